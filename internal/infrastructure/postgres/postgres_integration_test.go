package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/postgres"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/config"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

// startPostgres levanta un contenedor PostgreSQL con el esquema migrado.
// Sin Docker disponible el test se omite.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integración con PostgreSQL omitida en modo -short")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("warehouse_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Skipf("docker no disponible: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(pool))
	// segunda pasada: sin cambios pendientes no es error
	require.NoError(t, postgres.Migrate(pool))
	return pool
}

func truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE barcode_mapping, warehouse, article, location, currency, category, status RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

const stamp = "2024-03-01 10:00:00"

func base() entity.Base {
	return entity.Base{Version: 1, CreatedTimestamp: stamp, ModifiedTimestamp: stamp}
}

type refs struct {
	cat *entity.Category
	cur *entity.Currency
	st  *entity.Status
	loc *entity.Location
}

func seed(t *testing.T, repos repository.Repositories) refs {
	t.Helper()
	ctx := context.Background()
	r := refs{
		cat: &entity.Category{Base: base(), Description: "Food"},
		cur: &entity.Currency{Base: base(), CurrencyCode: "CHF", Country: "Switzerland"},
		st:  &entity.Status{Base: base(), Description: "ACTIVE"},
		loc: &entity.Location{Base: base(), Aisle: "A", Shelf: 1, Tray: 2},
	}
	require.NoError(t, repos.Categories.Create(ctx, r.cat))
	require.NoError(t, repos.Currencies.Create(ctx, r.cur))
	require.NoError(t, repos.Statuses.Create(ctx, r.st))
	require.NoError(t, repos.Locations.Create(ctx, r.loc))
	return r
}

func newArticle(desc string, r refs) *entity.Article {
	return &entity.Article{
		Base: base(), Description: desc, Amount: decimal.RequireFromString("3.50"),
		Category: r.cat, Currency: r.cur, Status: r.st,
	}
}

func TestPostgres(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	repos := postgres.NewRepositories(pool)

	// ────────────────────────────────────────────────────────────────
	// Dimensiones
	// ────────────────────────────────────────────────────────────────

	t.Run("status CRUD con versión", func(t *testing.T) {
		truncate(t, pool)
		st := &entity.Status{Base: base(), Description: "CREATED"}
		require.NoError(t, repos.Statuses.Create(ctx, st))
		assert.NotZero(t, st.ID)

		got, err := repos.Statuses.GetByDescription(ctx, "CREATED")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, stamp, got.CreatedTimestamp)

		got.Description = "INACTIVE"
		got.ModifiedTimestamp = "2024-03-02 11:00:00"
		require.NoError(t, repos.Statuses.Update(ctx, got))
		assert.Equal(t, int64(2), got.Version)
		assert.Equal(t, stamp, got.CreatedTimestamp)

		missing, err := repos.Statuses.GetByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, missing)

		err = repos.Statuses.Update(ctx, &entity.Status{Base: entity.Base{ID: 999}, Description: "X"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("claves naturales únicas", func(t *testing.T) {
		truncate(t, pool)
		require.NoError(t, repos.Currencies.Create(ctx, &entity.Currency{Base: base(), CurrencyCode: "CHF", Country: "Switzerland"}))
		err := repos.Currencies.Create(ctx, &entity.Currency{Base: base(), CurrencyCode: "CHF", Country: "Switzerland"})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		require.NoError(t, repos.Locations.Create(ctx, &entity.Location{Base: base(), Aisle: "B", Shelf: 1, Tray: 1}))
		err = repos.Locations.Create(ctx, &entity.Location{Base: base(), Aisle: "B", Shelf: 1, Tray: 1})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		loc, err := repos.Locations.GetByPosition(ctx, "B", 1, 1)
		require.NoError(t, err)
		require.NotNil(t, loc)
	})

	// ────────────────────────────────────────────────────────────────
	// Artículos y existencias
	// ────────────────────────────────────────────────────────────────

	t.Run("artículo con referencias cargadas", func(t *testing.T) {
		truncate(t, pool)
		r := seed(t, repos)
		a := newArticle("Sauser", r)
		require.NoError(t, repos.Articles.Create(ctx, a))

		got, err := repos.Articles.GetByDescription(ctx, "Sauser")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, decimal.RequireFromString("3.5").Equal(got.Amount))
		assert.Equal(t, "Food", got.Category.Description)
		assert.Equal(t, "CHF", got.Currency.CurrencyCode)
		assert.Equal(t, "ACTIVE", got.Status.Description)

		err = repos.Articles.Create(ctx, newArticle("Sauser", r))
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		bad := newArticle("Huevos", r)
		bad.Category = &entity.Category{Base: entity.Base{ID: 999}}
		assert.ErrorIs(t, repos.Articles.Create(ctx, bad), domain.ErrNotFound)
	})

	t.Run("montos con más de dos decimales se guardan sin redondear", func(t *testing.T) {
		truncate(t, pool)
		r := seed(t, repos)
		for desc, amount := range map[string]string{"Kaugummi": "0.001", "Sauser": "4.875"} {
			a := newArticle(desc, r)
			a.Amount = decimal.RequireFromString(amount)
			require.NoError(t, repos.Articles.Create(ctx, a), desc)

			got, err := repos.Articles.GetByID(ctx, a.ID)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, decimal.RequireFromString(amount).Equal(got.Amount), "%s: %s", desc, got.Amount)
		}

		uc := inventory.NewCSVImportUseCase(postgres.NewTxRunner(pool), clock.NewFake(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)), logger.Nop(), nil)
		csv := "Article,Category,Amount,CurrencyCode,Country,Status,Aisle,Shelf,Tray,Quantity\n" +
			"Sauser,Food,6.125,CHF,Switzerland,ACTIVE,A,1,2,50\n"
		_, err := uc.Import(ctx, strings.NewReader(csv))
		require.NoError(t, err)
		got, err := repos.Articles.GetByDescription(ctx, "Sauser")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("6.125").Equal(got.Amount), got.Amount.String())
	})

	t.Run("CHECK violado es formato inválido", func(t *testing.T) {
		truncate(t, pool)
		r := seed(t, repos)
		a := newArticle("Sauser", r)
		require.NoError(t, repos.Articles.Create(ctx, a))

		// el repositorio no valida: la restricción quantity > 0 la aplica la base
		w := &entity.Warehouse{Base: base(), Quantity: 0, Article: a, Location: r.loc}
		assert.ErrorIs(t, repos.Warehouses.Create(ctx, w), domain.ErrInvalidFormat)
	})

	t.Run("cascada al borrar categoría y ubicación", func(t *testing.T) {
		truncate(t, pool)
		r := seed(t, repos)
		a := newArticle("Sauser", r)
		require.NoError(t, repos.Articles.Create(ctx, a))
		w := &entity.Warehouse{Base: base(), Quantity: 10, Article: a, Location: r.loc}
		require.NoError(t, repos.Warehouses.Create(ctx, w))

		require.NoError(t, repos.Locations.Delete(ctx, r.loc.ID))
		got, err := repos.Warehouses.GetByID(ctx, w.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		require.NoError(t, repos.Categories.Delete(ctx, r.cat.ID))
		art, err := repos.Articles.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Nil(t, art)
	})

	t.Run("ListLowStock sin repetidos", func(t *testing.T) {
		truncate(t, pool)
		r := seed(t, repos)
		loc2 := &entity.Location{Base: base(), Aisle: "A", Shelf: 1, Tray: 3}
		require.NoError(t, repos.Locations.Create(ctx, loc2))

		low := newArticle("Sauser", r)
		high := newArticle("Most", r)
		require.NoError(t, repos.Articles.Create(ctx, low))
		require.NoError(t, repos.Articles.Create(ctx, high))
		for _, w := range []*entity.Warehouse{
			{Base: base(), Quantity: 200, Article: low, Location: r.loc},
			{Base: base(), Quantity: 250, Article: low, Location: loc2},
			{Base: base(), Quantity: 300, Article: high, Location: r.loc},
		} {
			require.NoError(t, repos.Warehouses.Create(ctx, w))
		}

		list, err := repos.Articles.ListLowStock(ctx, 250)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Sauser", list[0].Description)

		w, err := repos.Warehouses.GetByArticleAndLocation(ctx, high.ID, r.loc.ID)
		require.NoError(t, err)
		require.NotNil(t, w)
		assert.Equal(t, "A-1-2", w.Location.Label())
		assert.Equal(t, "Most", w.Article.Description)
	})

	t.Run("barcode GetByEAN devuelve el de menor id", func(t *testing.T) {
		truncate(t, pool)
		for _, d := range []string{"Mineralwasser", "Mineralwasser 1.5l"} {
			require.NoError(t, repos.BarcodeMappings.Create(ctx, &entity.BarcodeMapping{Base: base(), EAN: "7610000000001", Description: d}))
		}
		m, err := repos.BarcodeMappings.GetByEAN(ctx, "7610000000001")
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "Mineralwasser", m.Description)
	})

	// ────────────────────────────────────────────────────────────────
	// Transacciones e importación
	// ────────────────────────────────────────────────────────────────

	t.Run("TxRunner revierte ante error", func(t *testing.T) {
		truncate(t, pool)
		tx := postgres.NewTxRunner(pool)
		boom := errors.New("boom")
		err := tx.Run(ctx, func(r repository.Repositories) error {
			if err := r.Statuses.Create(ctx, &entity.Status{Base: base(), Description: "TEMP"}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		st, err := repos.Statuses.GetByDescription(ctx, "TEMP")
		require.NoError(t, err)
		assert.Nil(t, st)
	})

	t.Run("importación CSV sobre PostgreSQL", func(t *testing.T) {
		truncate(t, pool)
		seed(t, repos)
		uc := inventory.NewCSVImportUseCase(postgres.NewTxRunner(pool), clock.NewFake(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)), logger.Nop(), nil)

		csv := "Article,Category,Amount,CurrencyCode,Country,Status,Aisle,Shelf,Tray,Quantity\n" +
			"Sauser,Food,4.20,CHF,Switzerland,ACTIVE,A,1,2,120\n"
		res, err := uc.Import(ctx, strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, 1, res.ArticlesCreated)

		res, err = uc.Import(ctx, strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, 1, res.ArticlesUpdated)
		assert.Equal(t, 1, res.WarehousesUpdated)

		ws, err := repos.Warehouses.List(ctx)
		require.NoError(t, err)
		require.Len(t, ws, 1)
		assert.Equal(t, 120, ws[0].Quantity)
		assert.Equal(t, int64(2), ws[0].Version)
	})
}
