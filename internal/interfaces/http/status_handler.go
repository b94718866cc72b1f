package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/usecase"
)

// StatusHandler maneja las peticiones HTTP de /v1/statuses.
type StatusHandler struct {
	uc     *usecase.StatusUseCase
	export *inventory.CSVExportUseCase
}

// NewStatusHandler construye el handler.
func NewStatusHandler(uc *usecase.StatusUseCase, export *inventory.CSVExportUseCase) *StatusHandler {
	return &StatusHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Listar estados
// @Tags         statuses
// @Produce      json
// @Success      200  {array}   dto.StatusResponse
// @Router       /v1/statuses [get]
func (h *StatusHandler) List(c *fiber.Ctx) error {
	return listAll(c, h.uc.List)
}

// GetByID godoc
// @Summary      Obtener estado por ID
// @Tags         statuses
// @Produce      json
// @Param        id   path      int  true  "ID"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/statuses/{id} [get]
func (h *StatusHandler) GetByID(c *fiber.Ctx) error {
	return getOne(c, h.uc.GetByID)
}

// CSV godoc
// @Summary      Exportar estados como CSV
// @Tags         statuses
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /v1/statuses/csv [get]
func (h *StatusHandler) CSV(c *fiber.Ctx) error {
	return sendCSV(c, h.export, inventory.ExportStatuses)
}

// Create godoc
// @Summary      Crear estado
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StatusRequest  true  "Datos"
// @Success      201   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /v1/statuses [post]
func (h *StatusHandler) Create(c *fiber.Ctx) error {
	return createOne(c, h.uc.Create)
}

// Update godoc
// @Summary      Modificar estado
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "ID"
// @Param        body  body      dto.StatusRequest  true  "Datos"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/statuses/{id} [put]
func (h *StatusHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, h.uc.Update)
}

// Delete godoc
// @Summary      Eliminar estado
// @Tags         statuses
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/statuses/{id} [delete]
func (h *StatusHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, h.uc.Delete)
}
