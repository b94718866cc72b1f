package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/usecase"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StatusUC         *usecase.StatusUseCase
	CategoryUC       *usecase.CategoryUseCase
	CurrencyUC       *usecase.CurrencyUseCase
	LocationUC       *usecase.LocationUseCase
	ArticleUC        *usecase.ArticleUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	BarcodeMappingUC *usecase.BarcodeMappingUseCase
	Export           *inventory.CSVExportUseCase
	Import           *inventory.CSVImportUseCase
	Orders           OrderSender
	Metrics          nethttp.Handler // opcional
	Log              *logger.Logger
}

type crudHandler interface {
	List(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	CSV(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// resource registra las seis rutas comunes. /csv va antes de /:id.
func resource(g fiber.Router, h crudHandler) fiber.Router {
	g.Get("/", h.List)
	g.Get("/csv", h.CSV)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	return g
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	v1 := app.Group("/v1")

	resource(v1.Group("/statuses"), NewStatusHandler(deps.StatusUC, deps.Export))
	resource(v1.Group("/categories"), NewCategoryHandler(deps.CategoryUC, deps.Export))
	resource(v1.Group("/currencies"), NewCurrencyHandler(deps.CurrencyUC, deps.Export))
	resource(v1.Group("/locations"), NewLocationHandler(deps.LocationUC, deps.Export))
	resource(v1.Group("/articles"), NewArticleHandler(deps.ArticleUC, deps.Export))

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Export, deps.Import, deps.Log)
	warehouses := v1.Group("/warehouses")
	warehouses.Post("/upload", warehouseHandler.Upload)
	resource(warehouses, warehouseHandler)

	barcodeHandler := NewBarcodeMappingHandler(deps.BarcodeMappingUC, deps.Export)
	barcodes := v1.Group("/barcodemappings")
	barcodes.Post("/scan", barcodeHandler.Scan)
	resource(barcodes, barcodeHandler)

	v1.Get("/mail", NewMailHandler(deps.Orders).Send)
}
