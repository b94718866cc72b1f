package memory

import (
	"context"
	"fmt"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

var (
	_ repository.ArticleRepository   = (*ArticleRepo)(nil)
	_ repository.WarehouseRepository = (*WarehouseRepo)(nil)
)

// ArticleRepo repositorio de artículos en memoria.
type ArticleRepo struct{ s session }

func (t *tables) article(row articleRow) *entity.Article {
	a := &entity.Article{
		Base:        row.Base,
		Description: row.Description,
		Amount:      row.Amount,
	}
	if c, ok := t.categories[row.CategoryID]; ok {
		a.Category = &c
	}
	if c, ok := t.currencies[row.CurrencyID]; ok {
		a.Currency = &c
	}
	if st, ok := t.statuses[row.StatusID]; ok {
		a.Status = &st
	}
	return a
}

func (t *tables) articleByDescription(desc string) (articleRow, bool) {
	return lookup(t.articles, func(a articleRow) bool {
		return a.Description == desc
	})
}

// articleRowFrom valida las referencias como lo haría una FK.
func (t *tables) articleRowFrom(a *entity.Article) (articleRow, error) {
	if a.Category == nil || a.Currency == nil || a.Status == nil {
		return articleRow{}, fmt.Errorf("%w: article requiere category, currency y status", domain.ErrInvalidInput)
	}
	if _, ok := t.categories[a.Category.ID]; !ok {
		return articleRow{}, missing("category", a.Category.ID)
	}
	if _, ok := t.currencies[a.Currency.ID]; !ok {
		return articleRow{}, missing("currency", a.Currency.ID)
	}
	if _, ok := t.statuses[a.Status.ID]; !ok {
		return articleRow{}, missing("status", a.Status.ID)
	}
	return articleRow{
		Base:        a.Base,
		Description: a.Description,
		Amount:      a.Amount,
		CategoryID:  a.Category.ID,
		CurrencyID:  a.Currency.ID,
		StatusID:    a.Status.ID,
	}, nil
}

// deleteArticle borra el artículo y sus existencias.
func (t *tables) deleteArticle(id int64) {
	delete(t.articles, id)
	for wid := range t.warehouses {
		if t.warehouses[wid].ArticleID == id {
			delete(t.warehouses, wid)
		}
	}
}

func (r *ArticleRepo) Create(_ context.Context, a *entity.Article) error {
	return r.s.write(func(t *tables) error {
		if _, ok := t.articleByDescription(a.Description); ok {
			return duplicate("Article")
		}
		row, err := t.articleRowFrom(a)
		if err != nil {
			return err
		}
		row.ID = t.nextID("article")
		a.ID = row.ID
		t.articles[row.ID] = row
		return nil
	})
}

func (r *ArticleRepo) GetByID(_ context.Context, id int64) (*entity.Article, error) {
	var out *entity.Article
	err := r.s.read(func(t *tables) error {
		if row, ok := t.articles[id]; ok {
			out = t.article(row)
		}
		return nil
	})
	return out, err
}

func (r *ArticleRepo) GetByDescription(_ context.Context, desc string) (*entity.Article, error) {
	var out *entity.Article
	err := r.s.read(func(t *tables) error {
		if row, ok := t.articleByDescription(desc); ok {
			out = t.article(row)
		}
		return nil
	})
	return out, err
}

func (r *ArticleRepo) Update(_ context.Context, a *entity.Article) error {
	return r.s.write(func(t *tables) error {
		old, ok := t.articles[a.ID]
		if !ok {
			return missing("article", a.ID)
		}
		if other, ok := t.articleByDescription(a.Description); ok && other.ID != a.ID {
			return duplicate("Article")
		}
		row, err := t.articleRowFrom(a)
		if err != nil {
			return err
		}
		row.CreatedTimestamp = old.CreatedTimestamp
		row.Version = old.Version + 1
		a.CreatedTimestamp = row.CreatedTimestamp
		a.Version = row.Version
		t.articles[a.ID] = row
		return nil
	})
}

func (r *ArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	var out []*entity.Article
	err := r.s.read(func(t *tables) error {
		for _, id := range sortedKeys(t.articles) {
			out = append(out, t.article(t.articles[id]))
		}
		return nil
	})
	return out, err
}

func (r *ArticleRepo) ListLowStock(_ context.Context, limit int) ([]*entity.Article, error) {
	var out []*entity.Article
	err := r.s.read(func(t *tables) error {
		low := map[int64]bool{}
		for _, w := range t.warehouses {
			if w.Quantity <= limit {
				low[w.ArticleID] = true
			}
		}
		for _, id := range sortedKeys(t.articles) {
			if low[id] {
				out = append(out, t.article(t.articles[id]))
			}
		}
		return nil
	})
	return out, err
}

func (r *ArticleRepo) Delete(_ context.Context, id int64) error {
	return r.s.write(func(t *tables) error {
		t.deleteArticle(id)
		return nil
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Warehouse
// ──────────────────────────────────────────────────────────────────────────────

// WarehouseRepo repositorio de existencias en memoria.
type WarehouseRepo struct{ s session }

func (t *tables) warehouse(row warehouseRow) *entity.Warehouse {
	w := &entity.Warehouse{Base: row.Base, Quantity: row.Quantity}
	if a, ok := t.articles[row.ArticleID]; ok {
		w.Article = t.article(a)
	}
	if l, ok := t.locations[row.LocationID]; ok {
		w.Location = &l
	}
	return w
}

func (t *tables) warehouseByKey(articleID, locationID int64) (warehouseRow, bool) {
	return lookup(t.warehouses, func(w warehouseRow) bool {
		return w.ArticleID == articleID && w.LocationID == locationID
	})
}

func (t *tables) warehouseRowFrom(w *entity.Warehouse) (warehouseRow, error) {
	if w.Article == nil || w.Location == nil {
		return warehouseRow{}, fmt.Errorf("%w: warehouse requiere article y location", domain.ErrInvalidInput)
	}
	if _, ok := t.articles[w.Article.ID]; !ok {
		return warehouseRow{}, missing("article", w.Article.ID)
	}
	if _, ok := t.locations[w.Location.ID]; !ok {
		return warehouseRow{}, missing("location", w.Location.ID)
	}
	return warehouseRow{
		Base:       w.Base,
		Quantity:   w.Quantity,
		ArticleID:  w.Article.ID,
		LocationID: w.Location.ID,
	}, nil
}

func (r *WarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	return r.s.write(func(t *tables) error {
		row, err := t.warehouseRowFrom(w)
		if err != nil {
			return err
		}
		if _, ok := t.warehouseByKey(row.ArticleID, row.LocationID); ok {
			return duplicate("Warehouse")
		}
		row.ID = t.nextID("warehouse")
		w.ID = row.ID
		t.warehouses[row.ID] = row
		return nil
	})
}

func (r *WarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	var out *entity.Warehouse
	err := r.s.read(func(t *tables) error {
		if row, ok := t.warehouses[id]; ok {
			out = t.warehouse(row)
		}
		return nil
	})
	return out, err
}

func (r *WarehouseRepo) GetByArticleAndLocation(_ context.Context, articleID, locationID int64) (*entity.Warehouse, error) {
	var out *entity.Warehouse
	err := r.s.read(func(t *tables) error {
		if row, ok := t.warehouseByKey(articleID, locationID); ok {
			out = t.warehouse(row)
		}
		return nil
	})
	return out, err
}

func (r *WarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	return r.s.write(func(t *tables) error {
		old, ok := t.warehouses[w.ID]
		if !ok {
			return missing("warehouse", w.ID)
		}
		row, err := t.warehouseRowFrom(w)
		if err != nil {
			return err
		}
		if other, ok := t.warehouseByKey(row.ArticleID, row.LocationID); ok && other.ID != w.ID {
			return duplicate("Warehouse")
		}
		row.CreatedTimestamp = old.CreatedTimestamp
		row.Version = old.Version + 1
		w.CreatedTimestamp = row.CreatedTimestamp
		w.Version = row.Version
		t.warehouses[w.ID] = row
		return nil
	})
}

func (r *WarehouseRepo) List(_ context.Context) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	err := r.s.read(func(t *tables) error {
		for _, id := range sortedKeys(t.warehouses) {
			out = append(out, t.warehouse(t.warehouses[id]))
		}
		return nil
	})
	return out, err
}

func (r *WarehouseRepo) Delete(_ context.Context, id int64) error {
	return r.s.write(func(t *tables) error {
		delete(t.warehouses, id)
		return nil
	})
}
