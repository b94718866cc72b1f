package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/usecase"
)

// CurrencyHandler maneja las peticiones HTTP de /v1/currencies.
type CurrencyHandler struct {
	uc     *usecase.CurrencyUseCase
	export *inventory.CSVExportUseCase
}

// NewCurrencyHandler construye el handler.
func NewCurrencyHandler(uc *usecase.CurrencyUseCase, export *inventory.CSVExportUseCase) *CurrencyHandler {
	return &CurrencyHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Listar monedas
// @Tags         currencies
// @Produce      json
// @Success      200  {array}   dto.CurrencyResponse
// @Router       /v1/currencies [get]
func (h *CurrencyHandler) List(c *fiber.Ctx) error {
	return listAll(c, h.uc.List)
}

// GetByID godoc
// @Summary      Obtener moneda por ID
// @Tags         currencies
// @Produce      json
// @Param        id   path      int  true  "ID"
// @Success      200  {object}  dto.CurrencyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/currencies/{id} [get]
func (h *CurrencyHandler) GetByID(c *fiber.Ctx) error {
	return getOne(c, h.uc.GetByID)
}

// CSV godoc
// @Summary      Exportar monedas como CSV
// @Tags         currencies
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /v1/currencies/csv [get]
func (h *CurrencyHandler) CSV(c *fiber.Ctx) error {
	return sendCSV(c, h.export, inventory.ExportCurrencies)
}

// Create godoc
// @Summary      Crear moneda
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CurrencyRequest  true  "Datos"
// @Success      201   {object}  dto.CurrencyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /v1/currencies [post]
func (h *CurrencyHandler) Create(c *fiber.Ctx) error {
	return createOne(c, h.uc.Create)
}

// Update godoc
// @Summary      Modificar moneda
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "ID"
// @Param        body  body      dto.CurrencyRequest  true  "Datos"
// @Success      200   {object}  dto.CurrencyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/currencies/{id} [put]
func (h *CurrencyHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, h.uc.Update)
}

// Delete godoc
// @Summary      Eliminar moneda
// @Tags         currencies
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/currencies/{id} [delete]
func (h *CurrencyHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, h.uc.Delete)
}
