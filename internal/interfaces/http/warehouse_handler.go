package http

import (
	"fmt"
	"mime"

	"github.com/gofiber/fiber/v2"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/usecase"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

// WarehouseHandler maneja las peticiones HTTP de /v1/warehouses.
type WarehouseHandler struct {
	uc       *usecase.WarehouseUseCase
	export   *inventory.CSVExportUseCase
	importer *inventory.CSVImportUseCase
	log      *logger.Logger
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase, export *inventory.CSVExportUseCase, importer *inventory.CSVImportUseCase, log *logger.Logger) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, export: export, importer: importer, log: log.Component("upload")}
}

// List godoc
// @Summary      Listar existencias
// @Tags         warehouses
// @Produce      json
// @Success      200  {array}   dto.WarehouseResponse
// @Router       /v1/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	return listAll(c, h.uc.List)
}

// GetByID godoc
// @Summary      Obtener existencia por ID
// @Tags         warehouses
// @Produce      json
// @Param        id   path      int  true  "ID"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	return getOne(c, h.uc.GetByID)
}

// CSV godoc
// @Summary      Exportar existencias como CSV
// @Tags         warehouses
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /v1/warehouses/csv [get]
func (h *WarehouseHandler) CSV(c *fiber.Ctx) error {
	return sendCSV(c, h.export, inventory.ExportWarehouses)
}

// Create godoc
// @Summary      Crear existencia
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body      dto.WarehouseRequest  true  "Datos"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /v1/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	return createOne(c, h.uc.Create)
}

// Update godoc
// @Summary      Modificar existencia
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "ID"
// @Param        body  body      dto.WarehouseRequest  true  "Datos"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/warehouses/{id} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, h.uc.Update)
}

// Delete godoc
// @Summary      Eliminar existencia
// @Tags         warehouses
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, h.uc.Delete)
}

// Upload godoc
// @Summary      Importar existencias desde CSV
// @Description  Crea o actualiza artículos, referencias y existencias a partir del archivo. Todo o nada.
// @Tags         warehouses
// @Accept       mpfd
// @Produce      plain
// @Param        file  formData  file  true  "Archivo text/csv"
// @Success      200   {string}  string
// @Failure      400   {string}  string
// @Failure      417   {string}  string
// @Router       /v1/warehouses/upload [post]
func (h *WarehouseHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || !isCSV(fh.Header.Get(fiber.HeaderContentType)) {
		return c.Status(fiber.StatusBadRequest).SendString("Please upload a csv file!")
	}

	f, err := fh.Open()
	if err == nil {
		defer f.Close()
		_, err = h.importer.Import(c.UserContext(), f)
	}
	if err != nil {
		h.log.Warn().Err(err).Str("file", fh.Filename).Msg("importación rechazada")
		return c.Status(fiber.StatusExpectationFailed).SendString(fmt.Sprintf("Could not upload the file: %s!", fh.Filename))
	}
	return c.SendString("Uploaded the file successfully: " + fh.Filename)
}

func isCSV(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "text/csv"
}
