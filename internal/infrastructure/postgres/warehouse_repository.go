package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseSelect = `
	SELECT w.id, w.version, w.created_timestamp, w.modified_timestamp, w.quantity,
	       a.id, a.version, a.created_timestamp, a.modified_timestamp, a.description, a.amount,
	       c.id, c.version, c.created_timestamp, c.modified_timestamp, c.description,
	       cu.id, cu.version, cu.created_timestamp, cu.modified_timestamp, cu.currency_code, cu.country,
	       s.id, s.version, s.created_timestamp, s.modified_timestamp, s.description,
	       l.id, l.version, l.created_timestamp, l.modified_timestamp, l.aisle, l.shelf, l.tray
	FROM warehouse w
	JOIN article a ON a.id = w.article_id
	JOIN category c ON c.id = a.category_id
	JOIN currency cu ON cu.id = a.currency_id
	JOIN status s ON s.id = a.status_id
	JOIN location l ON l.id = w.location_id`

// WarehouseRepo implementación de WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

func scanWarehouse(row scanner) (*entity.Warehouse, error) {
	var (
		w      entity.Warehouse
		ts, lt stamps
		loc    entity.Location
	)
	ar := newArticleRow()
	dest := append(baseDest(&w.Base, &ts), &w.Quantity)
	dest = append(dest, ar.dest()...)
	dest = append(dest, locationDest(&loc, &lt)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	ts.apply(&w.Base)
	lt.apply(&loc.Base)
	w.Article = ar.article()
	w.Location = &loc
	return &w, nil
}

func warehouseRefs(w *entity.Warehouse) error {
	if w.Article == nil || w.Location == nil {
		return fmt.Errorf("%w: warehouse requiere article y location", domain.ErrInvalidInput)
	}
	return nil
}

func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	if err := warehouseRefs(w); err != nil {
		return err
	}
	created, modified, err := insertStamps(&w.Base)
	if err != nil {
		return err
	}
	err = r.q.QueryRow(ctx, `
		INSERT INTO warehouse (version, created_timestamp, modified_timestamp, quantity, article_id, location_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		w.Version, created, modified, w.Quantity, w.Article.ID, w.Location.ID,
	).Scan(&w.ID)
	if err != nil {
		return writeErr("Warehouse", "insert", err)
	}
	return nil
}

func (r *WarehouseRepo) get(ctx context.Context, where string, args ...any) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRow(ctx, warehouseSelect+` WHERE `+where, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	return r.get(ctx, `w.id = $1`, id)
}

func (r *WarehouseRepo) GetByArticleAndLocation(ctx context.Context, articleID, locationID int64) (*entity.Warehouse, error) {
	return r.get(ctx, `w.article_id = $1 AND w.location_id = $2`, articleID, locationID)
}

func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	if err := warehouseRefs(w); err != nil {
		return err
	}
	modified, err := parseStamp(w.ModifiedTimestamp)
	if err != nil {
		return err
	}
	var ts stamps
	err = r.q.QueryRow(ctx, `
		UPDATE warehouse
		SET quantity = $2, article_id = $3, location_id = $4, modified_timestamp = $5, version = version + 1
		WHERE id = $1 RETURNING version, created_timestamp, modified_timestamp`,
		w.ID, w.Quantity, w.Article.ID, w.Location.ID, modified,
	).Scan(&w.Version, &ts.created, &ts.modified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return missing("warehouse", w.ID)
		}
		return writeErr("Warehouse", "update", err)
	}
	ts.apply(&w.Base)
	return nil
}

func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	rows, err := r.q.Query(ctx, warehouseSelect+` ORDER BY w.id`)
	if err != nil {
		return nil, fmt.Errorf("list warehouse: %w", err)
	}
	defer rows.Close()
	var out []*entity.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WarehouseRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM warehouse WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}
