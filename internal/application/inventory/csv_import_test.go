package inventory_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/internal/infrastructure/memory"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const header = "Article,Category,Amount,CurrencyCode,Country,Status,Aisle,Shelf,Tray,Quantity\n"

type recorder struct {
	results []*inventory.ImportResult
	errs    []error
}

func (r *recorder) ObserveImport(res *inventory.ImportResult, err error) {
	r.results = append(r.results, res)
	r.errs = append(r.errs, err)
}

func newImporter(t *testing.T) (*inventory.CSVImportUseCase, repository.Repositories, *recorder, *clock.Fake) {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewFake(time.Date(2024, 6, 3, 14, 0, 0, 0, time.Local))
	rec := &recorder{}
	return inventory.NewCSVImportUseCase(store, clk, logger.Nop(), rec), store.Repositories(), rec, clk
}

type snapshot struct {
	statuses, categories, currencies, locations, articles, warehouses int
}

func count(t *testing.T, repos repository.Repositories) snapshot {
	t.Helper()
	ctx := context.Background()
	st, err := repos.Statuses.List(ctx)
	require.NoError(t, err)
	cat, err := repos.Categories.List(ctx)
	require.NoError(t, err)
	cur, err := repos.Currencies.List(ctx)
	require.NoError(t, err)
	loc, err := repos.Locations.List(ctx)
	require.NoError(t, err)
	art, err := repos.Articles.List(ctx)
	require.NoError(t, err)
	wh, err := repos.Warehouses.List(ctx)
	require.NoError(t, err)
	return snapshot{len(st), len(cat), len(cur), len(loc), len(art), len(wh)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Conciliación
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_CreaYLuegoActualizaArticulo(t *testing.T) {
	ctx := context.Background()
	uc, repos, _, clk := newImporter(t)

	res, err := uc.Import(ctx, strings.NewReader(header+"Sauser,Alkoholische Getränke,4.8,CHF,Schweiz,ACTIVE,A,1,1,50\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.ArticlesCreated)
	assert.Equal(t, 1, res.WarehousesCreated)
	assert.NotEmpty(t, res.BatchID)

	a, err := repos.Articles.GetByDescription(ctx, "Sauser")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.True(t, a.Amount.Equal(decimal.RequireFromString("4.8")))
	assert.Equal(t, "CHF", a.Currency.CurrencyCode)
	assert.Equal(t, "Schweiz", a.Currency.Country)
	assert.Equal(t, "Alkoholische Getränke", a.Category.Description)
	firstID := a.ID

	clk.Advance(time.Hour)
	res, err = uc.Import(ctx, strings.NewReader(header+"Sauser,Getränke,6,EUR,Deutschland,ACTIVE,A,1,1,50\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.ArticlesUpdated)
	assert.Equal(t, 1, res.WarehousesUpdated)

	arts, err := repos.Articles.List(ctx)
	require.NoError(t, err)
	require.Len(t, arts, 1)
	a = arts[0]
	assert.Equal(t, firstID, a.ID)
	assert.True(t, a.Amount.Equal(decimal.NewFromInt(6)))
	assert.Equal(t, "EUR", a.Currency.CurrencyCode)
	assert.Equal(t, "Deutschland", a.Currency.Country)
	assert.Equal(t, "Getränke", a.Category.Description)
	assert.Equal(t, int64(2), a.Version)
	assert.Equal(t, "2024-06-03 14:00:00", a.CreatedTimestamp)
	assert.Equal(t, "2024-06-03 15:00:00", a.ModifiedTimestamp)

	// las dimensiones no se renombran: quedan ambas categorías y ambas monedas
	s := count(t, repos)
	assert.Equal(t, 2, s.categories)
	assert.Equal(t, 2, s.currencies)
	assert.Equal(t, 1, s.warehouses)
}

func TestImport_Idempotente(t *testing.T) {
	ctx := context.Background()
	uc, repos, _, _ := newImporter(t)
	file := header +
		"Sauser,Alkoholische Getränke,4.8,CHF,Schweiz,ACTIVE,A,1,1,50\n" +
		"Grüner Maxirock,Röcke,79.9,CHF,Schweiz,ACTIVE,A,1,2,200\n" +
		"Grüner Maxirock,Röcke,79.9,CHF,Schweiz,ACTIVE,B,1,1,20\n"

	_, err := uc.Import(ctx, strings.NewReader(file))
	require.NoError(t, err)
	first := count(t, repos)
	firstStock, err := repos.Warehouses.List(ctx)
	require.NoError(t, err)

	_, err = uc.Import(ctx, strings.NewReader(file))
	require.NoError(t, err)
	second := count(t, repos)
	secondStock, err := repos.Warehouses.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, snapshot{statuses: 1, categories: 2, currencies: 1, locations: 3, articles: 2, warehouses: 3}, first)
	assert.Equal(t, first, second)
	require.Len(t, secondStock, len(firstStock))
	for i := range firstStock {
		assert.Equal(t, firstStock[i].ID, secondStock[i].ID)
		assert.Equal(t, firstStock[i].Quantity, secondStock[i].Quantity)
		assert.Equal(t, firstStock[i].Article.Description, secondStock[i].Article.Description)
		assert.Equal(t, firstStock[i].Location.Label(), secondStock[i].Location.Label())
	}
}

func TestImport_ColumnasEnOtroOrdenYBOM(t *testing.T) {
	ctx := context.Background()
	uc, repos, _, _ := newImporter(t)
	file := "\ufeffQuantity,Tray,Shelf,Aisle,Status,Country,CurrencyCode,Amount,Category,Article\n" +
		"7,3,2,C,CREATED,USA,USD,12.50,Sport,Laufschuh\n"

	_, err := uc.Import(ctx, strings.NewReader(file))
	require.NoError(t, err)

	stock, err := repos.Warehouses.List(ctx)
	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.Equal(t, 7, stock[0].Quantity)
	assert.Equal(t, "C-2-3", stock[0].Location.Label())
	assert.Equal(t, "Laufschuh", stock[0].Article.Description)
}

func TestImport_TextoSeConservaTalCual(t *testing.T) {
	ctx := context.Background()
	uc, repos, _, _ := newImporter(t)
	// la búsqueda por descripción es exacta: " Sauser" es otro artículo
	file := header +
		"Sauser,Getränke,4.8,CHF,Schweiz,ACTIVE,A,1,1,50\n" +
		" Sauser,Getränke, 5 ,CHF,Schweiz,ACTIVE,A,1,1, 20\n"

	res, err := uc.Import(ctx, strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, 2, res.ArticlesCreated)
	assert.Equal(t, 1, count(t, repos).categories)
	assert.Equal(t, 2, count(t, repos).warehouses)

	a, err := repos.Articles.GetByDescription(ctx, " Sauser")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "5", a.Amount.String())

	plain, err := repos.Articles.GetByDescription(ctx, "Sauser")
	require.NoError(t, err)
	require.NotNil(t, plain)
	assert.Equal(t, "4.8", plain.Amount.String())
}

func TestImport_MontosSinRedondeo(t *testing.T) {
	ctx := context.Background()
	uc, repos, _, _ := newImporter(t)
	file := header +
		"Kaugummi,Süsswaren,0.001,CHF,Schweiz,ACTIVE,A,1,1,50\n" +
		"Sauser,Getränke,4.875,CHF,Schweiz,ACTIVE,A,1,2,50\n"

	_, err := uc.Import(ctx, strings.NewReader(file))
	require.NoError(t, err)

	for desc, want := range map[string]string{"Kaugummi": "0.001", "Sauser": "4.875"} {
		a, err := repos.Articles.GetByDescription(ctx, desc)
		require.NoError(t, err)
		require.NotNil(t, a)
		assert.True(t, decimal.RequireFromString(want).Equal(a.Amount), "%s: %s", desc, a.Amount)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos: todo o nada
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_ArchivoInvalidoNoModificaNada(t *testing.T) {
	cases := map[string]struct {
		file string
		want error
	}{
		"vacío":              {"", domain.ErrInvalidCSV},
		"falta columna":      {"Article,Category,Amount\nSauser,Getränke,4.8\n", domain.ErrInvalidCSV},
		"importe no numérico": {header + "Sauser,Getränke,viel,CHF,Schweiz,ACTIVE,A,1,1,50\n", domain.ErrInvalidCSV},
		"estante no numérico": {header + "Sauser,Getränke,4.8,CHF,Schweiz,ACTIVE,A,x,1,50\n", domain.ErrInvalidCSV},
		"celda vacía":        {header + "Sauser,,4.8,CHF,Schweiz,ACTIVE,A,1,1,50\n", domain.ErrInvalidCSV},
		"fila corta":         {header + "Sauser,Getränke,4.8\n", domain.ErrInvalidCSV},
		"cantidad cero":      {header + "Sauser,Getränke,4.8,CHF,Schweiz,ACTIVE,A,1,1,0\n", domain.ErrInvalidFormat},
		"importe negativo":   {header + "Sauser,Getränke,-4.8,CHF,Schweiz,ACTIVE,A,1,1,5\n", domain.ErrInvalidFormat},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			uc, repos, rec, _ := newImporter(t)
			// una fila válida delante de la inválida
			file := tc.file
			if strings.HasPrefix(file, header) {
				file = header + "Grüner Maxirock,Röcke,79.9,CHF,Schweiz,ACTIVE,A,1,1,200\n" + strings.TrimPrefix(file, header)
			}
			_, err := uc.Import(context.Background(), strings.NewReader(file))
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, snapshot{}, count(t, repos))
			require.Len(t, rec.errs, 1)
			assert.Error(t, rec.errs[0])
		})
	}
}

type failingWarehouses struct {
	repository.WarehouseRepository
	allowed int
	calls   *int
}

func (f failingWarehouses) Create(ctx context.Context, w *entity.Warehouse) error {
	*f.calls++
	if *f.calls > f.allowed {
		return errors.New("disco lleno")
	}
	return f.WarehouseRepository.Create(ctx, w)
}

// failingTx deja pasar `allowed` altas de existencias y falla la siguiente.
type failingTx struct {
	store   *memory.Store
	allowed int
}

func (f failingTx) Run(ctx context.Context, fn func(repository.Repositories) error) error {
	calls := 0
	return f.store.Run(ctx, func(r repository.Repositories) error {
		r.Warehouses = failingWarehouses{WarehouseRepository: r.Warehouses, allowed: f.allowed, calls: &calls}
		return fn(r)
	})
}

func TestImport_FalloEnTransaccionRevierte(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := inventory.NewCSVImportUseCase(failingTx{store: store, allowed: 1}, clock.System{}, logger.Nop(), nil)

	_, err := uc.Import(ctx, strings.NewReader(header+
		"Sauser,Getränke,4.8,CHF,Schweiz,ACTIVE,A,1,1,50\n"+
		"Laufschuh,Sport,12.5,USD,USA,CREATED,C,2,3,7\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disco lleno")
	assert.Equal(t, snapshot{}, count(t, store.Repositories()))
}

func TestImport_ContextoCancelado(t *testing.T) {
	uc, repos, _, _ := newImporter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Import(ctx, strings.NewReader(header+"Sauser,Getränke,4.8,CHF,Schweiz,ACTIVE,A,1,1,50\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, snapshot{}, count(t, repos))
}
