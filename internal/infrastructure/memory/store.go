// Package memory implementa los puertos de persistencia sobre mapas en memoria.
// Respeta las mismas claves únicas, cascadas y contadores de versión que el esquema PostgreSQL.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

type articleRow struct {
	entity.Base
	Description string
	Amount      decimal.Decimal
	CategoryID  int64
	CurrencyID  int64
	StatusID    int64
}

type warehouseRow struct {
	entity.Base
	Quantity   int
	ArticleID  int64
	LocationID int64
}

// tables estado completo del almacén en memoria. Se copia entero al abrir una transacción.
type tables struct {
	seq        map[string]int64 // secuencia propia por tabla, como BIGSERIAL
	statuses   map[int64]entity.Status
	categories map[int64]entity.Category
	currencies map[int64]entity.Currency
	locations  map[int64]entity.Location
	articles   map[int64]articleRow
	warehouses map[int64]warehouseRow
	barcodes   map[int64]entity.BarcodeMapping
}

func newTables() *tables {
	return &tables{
		seq:        map[string]int64{},
		statuses:   map[int64]entity.Status{},
		categories: map[int64]entity.Category{},
		currencies: map[int64]entity.Currency{},
		locations:  map[int64]entity.Location{},
		articles:   map[int64]articleRow{},
		warehouses: map[int64]warehouseRow{},
		barcodes:   map[int64]entity.BarcodeMapping{},
	}
}

func (t *tables) clone() *tables {
	return &tables{
		seq:        maps.Clone(t.seq),
		statuses:   maps.Clone(t.statuses),
		categories: maps.Clone(t.categories),
		currencies: maps.Clone(t.currencies),
		locations:  maps.Clone(t.locations),
		articles:   maps.Clone(t.articles),
		warehouses: maps.Clone(t.warehouses),
		barcodes:   maps.Clone(t.barcodes),
	}
}

func (t *tables) nextID(table string) int64 {
	t.seq[table]++
	return t.seq[table]
}

// Store base de datos en memoria segura para uso concurrente.
type Store struct {
	mu sync.RWMutex
	t  *tables
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{t: newTables()}
}

// session resuelve sobre qué tablas opera un repositorio: las compartidas (con lock) o las de una transacción.
type session struct {
	store *Store
	tx    *tables
}

func (s session) read(fn func(t *tables) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return fn(s.store.t)
}

func (s session) write(fn func(t *tables) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return fn(s.store.t)
}

func (s session) repositories() repository.Repositories {
	return repository.Repositories{
		Statuses:        &StatusRepo{s: s},
		Categories:      &CategoryRepo{s: s},
		Currencies:      &CurrencyRepo{s: s},
		Locations:       &LocationRepo{s: s},
		Articles:        &ArticleRepo{s: s},
		Warehouses:      &WarehouseRepo{s: s},
		BarcodeMappings: &BarcodeMappingRepo{s: s},
	}
}

// Repositories devuelve repositorios que operan fuera de transacción.
func (st *Store) Repositories() repository.Repositories {
	return session{store: st}.repositories()
}

// Run ejecuta fn sobre una copia de las tablas; si fn no falla la copia reemplaza al estado compartido.
// Las transacciones se serializan entre sí y con las escrituras sueltas.
func (st *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	work := st.t.clone()
	if err := fn(session{store: st, tx: work}.repositories()); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	st.t = work
	return nil
}

func sortedKeys[V any](m map[int64]V) []int64 {
	return slices.Sorted(maps.Keys(m))
}

// lookup recorre la tabla una vez y devuelve la fila coincidente de menor id,
// como un SELECT ... ORDER BY id LIMIT 1. Con claves únicas hay a lo sumo una.
func lookup[V any](m map[int64]V, match func(V) bool) (V, bool) {
	var (
		best   V
		bestID int64
		found  bool
	)
	for id, v := range m {
		if match(v) && (!found || id < bestID) {
			best, bestID, found = v, id, true
		}
	}
	return best, found
}
