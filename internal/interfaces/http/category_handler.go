package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/usecase"
)

// CategoryHandler maneja /v1/categories. Eliminar una categoría borra sus artículos.
type CategoryHandler struct {
	uc     *usecase.CategoryUseCase
	export *inventory.CSVExportUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, export *inventory.CSVExportUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Router       /v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return listAll(c, h.uc.List)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "ID"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	return getOne(c, h.uc.GetByID)
}

// CSV godoc
// @Summary      Exportar categorías como CSV
// @Tags         categories
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /v1/categories/csv [get]
func (h *CategoryHandler) CSV(c *fiber.Ctx) error {
	return sendCSV(c, h.export, inventory.ExportCategories)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CategoryRequest  true  "Datos"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /v1/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	return createOne(c, h.uc.Create)
}

// Update godoc
// @Summary      Modificar categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "ID"
// @Param        body  body      dto.CategoryRequest  true  "Datos"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, h.uc.Update)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, h.uc.Delete)
}
