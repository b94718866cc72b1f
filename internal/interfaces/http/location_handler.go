package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/usecase"
)

// LocationHandler maneja las peticiones HTTP de /v1/locations.
type LocationHandler struct {
	uc     *usecase.LocationUseCase
	export *inventory.CSVExportUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase, export *inventory.CSVExportUseCase) *LocationHandler {
	return &LocationHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Produce      json
// @Success      200  {array}   dto.LocationResponse
// @Router       /v1/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	return listAll(c, h.uc.List)
}

// GetByID godoc
// @Summary      Obtener ubicación por ID
// @Tags         locations
// @Produce      json
// @Param        id   path      int  true  "ID"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/locations/{id} [get]
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	return getOne(c, h.uc.GetByID)
}

// CSV godoc
// @Summary      Exportar ubicaciones como CSV
// @Tags         locations
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /v1/locations/csv [get]
func (h *LocationHandler) CSV(c *fiber.Ctx) error {
	return sendCSV(c, h.export, inventory.ExportLocations)
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LocationRequest  true  "Datos"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /v1/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	return createOne(c, h.uc.Create)
}

// Update godoc
// @Summary      Modificar ubicación
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "ID"
// @Param        body  body      dto.LocationRequest  true  "Datos"
// @Success      200   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/locations/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, h.uc.Update)
}

// Delete godoc
// @Summary      Eliminar ubicación
// @Tags         locations
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/locations/{id} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, h.uc.Delete)
}
