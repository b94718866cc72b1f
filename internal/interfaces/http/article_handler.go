package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/usecase"
)

// ArticleHandler maneja las peticiones HTTP de /v1/articles.
type ArticleHandler struct {
	uc     *usecase.ArticleUseCase
	export *inventory.CSVExportUseCase
}

// NewArticleHandler construye el handler.
func NewArticleHandler(uc *usecase.ArticleUseCase, export *inventory.CSVExportUseCase) *ArticleHandler {
	return &ArticleHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Listar artículos
// @Tags         articles
// @Produce      json
// @Success      200  {array}   dto.ArticleResponse
// @Router       /v1/articles [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	return listAll(c, h.uc.List)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         articles
// @Produce      json
// @Param        id   path      int  true  "ID"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/articles/{id} [get]
func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	return getOne(c, h.uc.GetByID)
}

// CSV godoc
// @Summary      Exportar artículos como CSV
// @Tags         articles
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /v1/articles/csv [get]
func (h *ArticleHandler) CSV(c *fiber.Ctx) error {
	return sendCSV(c, h.export, inventory.ExportArticles)
}

// Create godoc
// @Summary      Crear artículo
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ArticleRequest  true  "Datos"
// @Success      201   {object}  dto.ArticleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /v1/articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	return createOne(c, h.uc.Create)
}

// Update godoc
// @Summary      Modificar artículo
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "ID"
// @Param        body  body      dto.ArticleRequest  true  "Datos"
// @Success      200   {object}  dto.ArticleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/articles/{id} [put]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, h.uc.Update)
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         articles
// @Param        id   path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/articles/{id} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, h.uc.Delete)
}
