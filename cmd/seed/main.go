// seed carga los datos iniciales de un perfil y, opcionalmente, una lista de códigos de barras.
//
// Uso: go run ./cmd/seed [--profile dev|prod|none] [--encoding utf-8|windows-1252] [ruta/barcodes.csv]
// Sin --profile usa APP_PROFILE. El CSV debe tener las columnas EAN y Description
// separadas por CSV_FILE_SEPARATOR.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/seed"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/memory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/postgres"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/config"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

func main() {
	profile := pflag.StringP("profile", "p", "", "perfil de datos iniciales (dev, prod, none)")
	encoding := pflag.StringP("encoding", "e", seed.EncodingUTF8, "codificación del CSV de códigos de barras")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if *profile == "" {
		*profile = cfg.App.Profile
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: cfg.App.Name + "-seed"})
	ctx := context.Background()

	var tx inventory.TxRunner
	switch cfg.DB.Driver {
	case "memory":
		// útil solo para validar el archivo: nada persiste
		tx = memory.NewStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		tx = postgres.NewTxRunner(pool)
	}

	seeder := seed.New(tx, clock.System{}, log)
	if _, err := seeder.Run(ctx, *profile); err != nil {
		log.Fatal().Err(err).Msg("datos iniciales")
	}

	if pflag.NArg() == 0 {
		return
	}
	path := pflag.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("abrir CSV de códigos de barras")
	}
	defer f.Close()

	rows, err := seed.ParseBarcodes(f, *encoding, cfg.Order.Separator)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("leer CSV de códigos de barras")
	}
	res, err := seeder.ImportBarcodes(ctx, rows)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("importar códigos de barras")
	}
	fmt.Printf("Códigos de barras: %d filas, %d nuevos\n", len(rows), res.Created)
}
