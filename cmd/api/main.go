package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/shopspring/decimal"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/order"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/seed"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/usecase"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/mail"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/memory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/metrics"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/orderfile"
	infrapdf "github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/pdf"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/postgres"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/scheduler"
	httpRouter "github.com/vinherch/warehouse-zhaw-backend/internal/interfaces/http"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/config"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("profile", cfg.App.Profile).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	// Montos como número JSON (79.9) y no como string.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	clk := clock.System{}

	var (
		repos    repository.Repositories
		txRunner inventory.TxRunner
	)
	switch cfg.DB.Driver {
	case "memory":
		store := memory.NewStore()
		repos, txRunner = store.Repositories(), store
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.Migrate {
			if err := postgres.Migrate(pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		repos, txRunner = postgres.NewRepositories(pool), postgres.NewTxRunner(pool)
	}

	if _, err := seed.New(txRunner, clk, log).Run(ctx, cfg.App.Profile); err != nil {
		log.Fatal().Err(err).Msg("datos iniciales")
	}

	appMetrics := metrics.New(cfg.App.Name)

	statusUC := usecase.NewStatusUseCase(repos.Statuses, clk)
	categoryUC := usecase.NewCategoryUseCase(repos.Categories, clk)
	currencyUC := usecase.NewCurrencyUseCase(repos.Currencies, clk)
	locationUC := usecase.NewLocationUseCase(repos.Locations, clk)
	articleUC := usecase.NewArticleUseCase(repos, clk)
	warehouseUC := usecase.NewWarehouseUseCase(repos, clk)
	barcodeUC := usecase.NewBarcodeMappingUseCase(repos, usecase.ScanDefaults{
		CategoryID: cfg.Scan.CategoryID,
		CurrencyID: cfg.Scan.CurrencyID,
		StatusID:   cfg.Scan.StatusID,
	}, clk)
	exportUC := inventory.NewCSVExportUseCase(repos)
	importUC := inventory.NewCSVImportUseCase(txRunner, clk, log, appMetrics)

	// Adjuntos del pedido: CSV siempre, PDF opcional.
	writers := []order.DocumentWriter{orderfile.NewCSVWriter(cfg.Order.SavePath, cfg.Order.Separator)}
	if cfg.Order.PDFEnabled {
		writers = append(writers, infrapdf.NewOrderPDFWriter(cfg.Order.SavePath, cfg.Order.CustomerName, clk))
	}
	orderUC := order.NewUseCase(repos.Articles, mail.NewGomailSender(cfg.Mail), order.Config{
		QuantityLimit: cfg.Order.QuantityLimit,
		CustomerName:  cfg.Order.CustomerName,
		CustomerEmail: cfg.Order.CustomerEmail,
	}, log, appMetrics, writers...)

	timer := scheduler.NewOrderMailTimer(orderUC, log, scheduler.OrderMailTimerConfig{
		Enabled: cfg.Timer.Enabled,
		Delay:   cfg.Timer.Delay,
		Period:  cfg.Timer.Period,
	})
	if err := timer.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("timer de pedidos")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Warehouse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StatusUC:         statusUC,
		CategoryUC:       categoryUC,
		CurrencyUC:       currencyUC,
		LocationUC:       locationUC,
		ArticleUC:        articleUC,
		WarehouseUC:      warehouseUC,
		BarcodeMappingUC: barcodeUC,
		Export:           exportUC,
		Import:           importUC,
		Orders:           orderUC,
		Metrics:          appMetrics.Handler(),
		Log:              log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := timer.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("detener timer de pedidos")
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
