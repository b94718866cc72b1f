package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/dto"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/usecase"
)

// BarcodeMappingHandler maneja las peticiones HTTP de /v1/barcodemappings.
type BarcodeMappingHandler struct {
	uc     *usecase.BarcodeMappingUseCase
	export *inventory.CSVExportUseCase
}

// NewBarcodeMappingHandler construye el handler.
func NewBarcodeMappingHandler(uc *usecase.BarcodeMappingUseCase, export *inventory.CSVExportUseCase) *BarcodeMappingHandler {
	return &BarcodeMappingHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Listar mapeos EAN
// @Tags         barcodemappings
// @Produce      json
// @Success      200  {array}   dto.BarcodeMappingResponse
// @Router       /v1/barcodemappings [get]
func (h *BarcodeMappingHandler) List(c *fiber.Ctx) error {
	return listAll(c, h.uc.List)
}

// GetByID godoc
// @Summary      Obtener mapeo EAN por ID
// @Tags         barcodemappings
// @Produce      json
// @Param        id   path      int  true  "ID"
// @Success      200  {object}  dto.BarcodeMappingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/barcodemappings/{id} [get]
func (h *BarcodeMappingHandler) GetByID(c *fiber.Ctx) error {
	return getOne(c, h.uc.GetByID)
}

// CSV godoc
// @Summary      Exportar mapeos EAN como CSV
// @Tags         barcodemappings
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /v1/barcodemappings/csv [get]
func (h *BarcodeMappingHandler) CSV(c *fiber.Ctx) error {
	return sendCSV(c, h.export, inventory.ExportBarcodeMappings)
}

// Create godoc
// @Summary      Crear mapeo EAN
// @Tags         barcodemappings
// @Accept       json
// @Produce      json
// @Param        body  body      dto.BarcodeMappingRequest  true  "Datos"
// @Success      201   {object}  dto.BarcodeMappingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /v1/barcodemappings [post]
func (h *BarcodeMappingHandler) Create(c *fiber.Ctx) error {
	return createOne(c, h.uc.Create)
}

// Update godoc
// @Summary      Modificar mapeo EAN
// @Tags         barcodemappings
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "ID"
// @Param        body  body      dto.BarcodeMappingRequest  true  "Datos"
// @Success      200   {object}  dto.BarcodeMappingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/barcodemappings/{id} [put]
func (h *BarcodeMappingHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, h.uc.Update)
}

// Delete godoc
// @Summary      Eliminar mapeo EAN
// @Tags         barcodemappings
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/barcodemappings/{id} [delete]
func (h *BarcodeMappingHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, h.uc.Delete)
}

// Scan godoc
// @Summary      Crear artículo desde un código EAN escaneado
// @Description  Usa la descripción del mapeo, las referencias por defecto y precio 1.00.
// @Tags         barcodemappings
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ScanRequest  true  "Código leído"
// @Success      201   {object}  dto.ArticleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/barcodemappings/scan [post]
func (h *BarcodeMappingHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Scan(c.UserContext(), in.BarcodeNumber)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
