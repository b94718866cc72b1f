package inventory

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

// ImportResult resumen de una importación.
type ImportResult struct {
	BatchID           string
	Rows              int
	ArticlesCreated   int
	ArticlesUpdated   int
	WarehousesCreated int
	WarehousesUpdated int
}

// CSVImportUseCase concilia un archivo de existencias con la base de datos.
// Estados, categorías, monedas y ubicaciones se reutilizan o se crean; artículos y
// existencias se crean o se sobrescriben con los valores de la fila.
type CSVImportUseCase struct {
	tx       TxRunner
	clock    clock.Clock
	log      *logger.Logger
	observer ImportObserver
}

// NewCSVImportUseCase construye el caso de uso. observer puede ser nil.
func NewCSVImportUseCase(tx TxRunner, clk clock.Clock, log *logger.Logger, observer ImportObserver) *CSVImportUseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	return &CSVImportUseCase{tx: tx, clock: clk, log: log.Component("csv-import"), observer: observer}
}

// Import valida el archivo completo y lo aplica en una sola transacción: o entran todas las filas o ninguna.
func (uc *CSVImportUseCase) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	res := &ImportResult{BatchID: uuid.New().String()}
	started := time.Now()

	rows, err := ParseImport(r)
	if err != nil {
		uc.log.Warn().Err(err).Str("batch", res.BatchID).Msg("archivo de importación rechazado")
		uc.observer.ObserveImport(res, err)
		return nil, err
	}
	res.Rows = len(rows)

	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		// contadores de esta transacción; se descartan si se reintenta o falla
		var counts ImportResult
		now := uc.clock.Now()
		for _, row := range rows {
			if err := applyRow(ctx, repos, row, now, &counts); err != nil {
				return fmt.Errorf("línea %d: %w", row.Line, err)
			}
		}
		res.ArticlesCreated, res.ArticlesUpdated = counts.ArticlesCreated, counts.ArticlesUpdated
		res.WarehousesCreated, res.WarehousesUpdated = counts.WarehousesCreated, counts.WarehousesUpdated
		return nil
	})
	uc.observer.ObserveImport(res, err)
	if err != nil {
		uc.log.Error().Err(err).Str("batch", res.BatchID).Int("rows", res.Rows).Msg("importación revertida")
		return nil, err
	}

	uc.log.Info().
		Str("batch", res.BatchID).
		Int("rows", res.Rows).
		Int("articles_created", res.ArticlesCreated).
		Int("articles_updated", res.ArticlesUpdated).
		Int("warehouses_created", res.WarehousesCreated).
		Int("warehouses_updated", res.WarehousesUpdated).
		Dur("elapsed", time.Since(started)).
		Msg("importación aplicada")
	return res, nil
}

// applyRow resuelve Status, Category, Currency, Location, Article y Warehouse en ese orden.
func applyRow(ctx context.Context, repos repository.Repositories, row ImportRow, now time.Time, counts *ImportResult) error {
	status, err := findOrInsert(ctx,
		func(ctx context.Context) (*entity.Status, error) { return repos.Statuses.GetByDescription(ctx, row.Status) },
		func() *entity.Status {
			s := &entity.Status{Description: row.Status}
			s.Stamp(now)
			return s
		},
		repos.Statuses.Create,
	)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}

	category, err := findOrInsert(ctx,
		func(ctx context.Context) (*entity.Category, error) {
			return repos.Categories.GetByDescription(ctx, row.Category)
		},
		func() *entity.Category {
			c := &entity.Category{Description: row.Category}
			c.Stamp(now)
			return c
		},
		repos.Categories.Create,
	)
	if err != nil {
		return fmt.Errorf("category: %w", err)
	}

	currency, err := findOrInsert(ctx,
		func(ctx context.Context) (*entity.Currency, error) {
			return repos.Currencies.GetByCodeAndCountry(ctx, row.CurrencyCode, row.Country)
		},
		func() *entity.Currency {
			c := &entity.Currency{CurrencyCode: row.CurrencyCode, Country: row.Country}
			c.Stamp(now)
			return c
		},
		repos.Currencies.Create,
	)
	if err != nil {
		return fmt.Errorf("currency: %w", err)
	}

	location, err := findOrInsert(ctx,
		func(ctx context.Context) (*entity.Location, error) {
			return repos.Locations.GetByPosition(ctx, row.Aisle, row.Shelf, row.Tray)
		},
		func() *entity.Location {
			l := &entity.Location{Aisle: row.Aisle, Shelf: row.Shelf, Tray: row.Tray}
			l.Stamp(now)
			return l
		},
		repos.Locations.Create,
	)
	if err != nil {
		return fmt.Errorf("location: %w", err)
	}

	article, created, err := findThenUpsert(ctx,
		func(ctx context.Context) (*entity.Article, error) { return repos.Articles.GetByDescription(ctx, row.Article) },
		func() *entity.Article {
			a := &entity.Article{}
			a.Stamp(now)
			return a
		},
		func(a *entity.Article) {
			a.Description = row.Article
			a.Category = category
			a.Status = status
			a.Currency = currency
			a.Amount = row.Amount
			a.Touch(now)
		},
		repos.Articles.Create,
		repos.Articles.Update,
	)
	if err != nil {
		return fmt.Errorf("article: %w", err)
	}
	if created {
		counts.ArticlesCreated++
	} else {
		counts.ArticlesUpdated++
	}

	_, created, err = findThenUpsert(ctx,
		func(ctx context.Context) (*entity.Warehouse, error) {
			return repos.Warehouses.GetByArticleAndLocation(ctx, article.ID, location.ID)
		},
		func() *entity.Warehouse {
			w := &entity.Warehouse{}
			w.Stamp(now)
			return w
		},
		func(w *entity.Warehouse) {
			w.Location = location
			w.Quantity = row.Quantity
			w.Article = article
			w.Touch(now)
		},
		repos.Warehouses.Create,
		repos.Warehouses.Update,
	)
	if err != nil {
		return fmt.Errorf("warehouse: %w", err)
	}
	if created {
		counts.WarehousesCreated++
	} else {
		counts.WarehousesUpdated++
	}
	return nil
}
