package memory

import (
	"context"
	"fmt"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

var (
	_ repository.StatusRepository   = (*StatusRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.CurrencyRepository = (*CurrencyRepo)(nil)
	_ repository.LocationRepository = (*LocationRepo)(nil)
)

func duplicate(what string) error {
	return fmt.Errorf("%w: %s already exists in database!", domain.ErrAlreadyExists, what)
}

func missing(what string, id int64) error {
	return fmt.Errorf("%w: %s %d", domain.ErrNotFound, what, id)
}

// ──────────────────────────────────────────────────────────────────────────────
// Status
// ──────────────────────────────────────────────────────────────────────────────

// StatusRepo repositorio de estados en memoria.
type StatusRepo struct{ s session }

func (t *tables) statusByDescription(desc string) (entity.Status, bool) {
	return lookup(t.statuses, func(st entity.Status) bool {
		return st.Description == desc
	})
}

func (r *StatusRepo) Create(_ context.Context, st *entity.Status) error {
	return r.s.write(func(t *tables) error {
		if _, ok := t.statusByDescription(st.Description); ok {
			return duplicate("Status")
		}
		st.ID = t.nextID("status")
		t.statuses[st.ID] = *st
		return nil
	})
}

func (r *StatusRepo) GetByID(_ context.Context, id int64) (*entity.Status, error) {
	var out *entity.Status
	err := r.s.read(func(t *tables) error {
		if st, ok := t.statuses[id]; ok {
			out = &st
		}
		return nil
	})
	return out, err
}

func (r *StatusRepo) GetByDescription(_ context.Context, desc string) (*entity.Status, error) {
	var out *entity.Status
	err := r.s.read(func(t *tables) error {
		if st, ok := t.statusByDescription(desc); ok {
			out = &st
		}
		return nil
	})
	return out, err
}

func (r *StatusRepo) Update(_ context.Context, st *entity.Status) error {
	return r.s.write(func(t *tables) error {
		old, ok := t.statuses[st.ID]
		if !ok {
			return missing("status", st.ID)
		}
		if other, ok := t.statusByDescription(st.Description); ok && other.ID != st.ID {
			return duplicate("Status")
		}
		st.CreatedTimestamp = old.CreatedTimestamp
		st.Version = old.Version + 1
		t.statuses[st.ID] = *st
		return nil
	})
}

func (r *StatusRepo) List(_ context.Context) ([]*entity.Status, error) {
	var out []*entity.Status
	err := r.s.read(func(t *tables) error {
		for _, id := range sortedKeys(t.statuses) {
			st := t.statuses[id]
			out = append(out, &st)
		}
		return nil
	})
	return out, err
}

func (r *StatusRepo) Delete(_ context.Context, id int64) error {
	return r.s.write(func(t *tables) error {
		delete(t.statuses, id)
		for aid := range t.articles {
			if t.articles[aid].StatusID == id {
				t.deleteArticle(aid)
			}
		}
		return nil
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Category
// ──────────────────────────────────────────────────────────────────────────────

// CategoryRepo repositorio de categorías en memoria.
type CategoryRepo struct{ s session }

func (t *tables) categoryByDescription(desc string) (entity.Category, bool) {
	return lookup(t.categories, func(c entity.Category) bool {
		return c.Description == desc
	})
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	return r.s.write(func(t *tables) error {
		if _, ok := t.categoryByDescription(c.Description); ok {
			return duplicate("Category")
		}
		c.ID = t.nextID("category")
		t.categories[c.ID] = *c
		return nil
	})
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	var out *entity.Category
	err := r.s.read(func(t *tables) error {
		if c, ok := t.categories[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) GetByDescription(_ context.Context, desc string) (*entity.Category, error) {
	var out *entity.Category
	err := r.s.read(func(t *tables) error {
		if c, ok := t.categoryByDescription(desc); ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	return r.s.write(func(t *tables) error {
		old, ok := t.categories[c.ID]
		if !ok {
			return missing("category", c.ID)
		}
		if other, ok := t.categoryByDescription(c.Description); ok && other.ID != c.ID {
			return duplicate("Category")
		}
		c.CreatedTimestamp = old.CreatedTimestamp
		c.Version = old.Version + 1
		t.categories[c.ID] = *c
		return nil
	})
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	err := r.s.read(func(t *tables) error {
		for _, id := range sortedKeys(t.categories) {
			c := t.categories[id]
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	return r.s.write(func(t *tables) error {
		delete(t.categories, id)
		for aid := range t.articles {
			if t.articles[aid].CategoryID == id {
				t.deleteArticle(aid)
			}
		}
		return nil
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Currency
// ──────────────────────────────────────────────────────────────────────────────

// CurrencyRepo repositorio de monedas en memoria.
type CurrencyRepo struct{ s session }

func (t *tables) currencyByKey(code, country string) (entity.Currency, bool) {
	return lookup(t.currencies, func(c entity.Currency) bool {
		return c.CurrencyCode == code && c.Country == country
	})
}

func (r *CurrencyRepo) Create(_ context.Context, c *entity.Currency) error {
	return r.s.write(func(t *tables) error {
		if _, ok := t.currencyByKey(c.CurrencyCode, c.Country); ok {
			return duplicate("Currency")
		}
		c.ID = t.nextID("currency")
		t.currencies[c.ID] = *c
		return nil
	})
}

func (r *CurrencyRepo) GetByID(_ context.Context, id int64) (*entity.Currency, error) {
	var out *entity.Currency
	err := r.s.read(func(t *tables) error {
		if c, ok := t.currencies[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CurrencyRepo) GetByCodeAndCountry(_ context.Context, code, country string) (*entity.Currency, error) {
	var out *entity.Currency
	err := r.s.read(func(t *tables) error {
		if c, ok := t.currencyByKey(code, country); ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CurrencyRepo) Update(_ context.Context, c *entity.Currency) error {
	return r.s.write(func(t *tables) error {
		old, ok := t.currencies[c.ID]
		if !ok {
			return missing("currency", c.ID)
		}
		if other, ok := t.currencyByKey(c.CurrencyCode, c.Country); ok && other.ID != c.ID {
			return duplicate("Currency")
		}
		c.CreatedTimestamp = old.CreatedTimestamp
		c.Version = old.Version + 1
		t.currencies[c.ID] = *c
		return nil
	})
}

func (r *CurrencyRepo) List(_ context.Context) ([]*entity.Currency, error) {
	var out []*entity.Currency
	err := r.s.read(func(t *tables) error {
		for _, id := range sortedKeys(t.currencies) {
			c := t.currencies[id]
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

func (r *CurrencyRepo) Delete(_ context.Context, id int64) error {
	return r.s.write(func(t *tables) error {
		delete(t.currencies, id)
		for aid := range t.articles {
			if t.articles[aid].CurrencyID == id {
				t.deleteArticle(aid)
			}
		}
		return nil
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Location
// ──────────────────────────────────────────────────────────────────────────────

// LocationRepo repositorio de ubicaciones en memoria.
type LocationRepo struct{ s session }

func (t *tables) locationByPosition(aisle string, shelf, tray int) (entity.Location, bool) {
	return lookup(t.locations, func(l entity.Location) bool {
		return l.Aisle == aisle && l.Shelf == shelf && l.Tray == tray
	})
}

func (r *LocationRepo) Create(_ context.Context, l *entity.Location) error {
	return r.s.write(func(t *tables) error {
		if _, ok := t.locationByPosition(l.Aisle, l.Shelf, l.Tray); ok {
			return duplicate("Location")
		}
		l.ID = t.nextID("location")
		t.locations[l.ID] = *l
		return nil
	})
}

func (r *LocationRepo) GetByID(_ context.Context, id int64) (*entity.Location, error) {
	var out *entity.Location
	err := r.s.read(func(t *tables) error {
		if l, ok := t.locations[id]; ok {
			out = &l
		}
		return nil
	})
	return out, err
}

func (r *LocationRepo) GetByPosition(_ context.Context, aisle string, shelf, tray int) (*entity.Location, error) {
	var out *entity.Location
	err := r.s.read(func(t *tables) error {
		if l, ok := t.locationByPosition(aisle, shelf, tray); ok {
			out = &l
		}
		return nil
	})
	return out, err
}

func (r *LocationRepo) Update(_ context.Context, l *entity.Location) error {
	return r.s.write(func(t *tables) error {
		old, ok := t.locations[l.ID]
		if !ok {
			return missing("location", l.ID)
		}
		if other, ok := t.locationByPosition(l.Aisle, l.Shelf, l.Tray); ok && other.ID != l.ID {
			return duplicate("Location")
		}
		l.CreatedTimestamp = old.CreatedTimestamp
		l.Version = old.Version + 1
		t.locations[l.ID] = *l
		return nil
	})
}

func (r *LocationRepo) List(_ context.Context) ([]*entity.Location, error) {
	var out []*entity.Location
	err := r.s.read(func(t *tables) error {
		for _, id := range sortedKeys(t.locations) {
			l := t.locations[id]
			out = append(out, &l)
		}
		return nil
	})
	return out, err
}

func (r *LocationRepo) Delete(_ context.Context, id int64) error {
	return r.s.write(func(t *tables) error {
		delete(t.locations, id)
		for wid := range t.warehouses {
			if t.warehouses[wid].LocationID == id {
				delete(t.warehouses, wid)
			}
		}
		return nil
	})
}
