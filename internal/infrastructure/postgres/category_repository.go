package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, version, created_timestamp, modified_timestamp, description`

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row scanner) (*entity.Category, error) {
	var (
		e  entity.Category
		ts stamps
	)
	if err := row.Scan(append(baseDest(&e.Base, &ts), &e.Description)...); err != nil {
		return nil, err
	}
	ts.apply(&e.Base)
	return &e, nil
}

// Create inserta y asigna el id generado.
func (r *CategoryRepo) Create(ctx context.Context, e *entity.Category) error {
	created, modified, err := insertStamps(&e.Base)
	if err != nil {
		return err
	}
	err = r.q.QueryRow(ctx,
		`INSERT INTO category (version, created_timestamp, modified_timestamp, description) VALUES ($1, $2, $3, $4) RETURNING id`,
		e.Version, created, modified, e.Description,
	).Scan(&e.ID)
	if err != nil {
		return writeErr("Category", "insert", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	e, err := scanCategory(r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM category WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return e, nil
}

// GetByDescription busca por la clave natural.
func (r *CategoryRepo) GetByDescription(ctx context.Context, description string) (*entity.Category, error) {
	e, err := scanCategory(r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM category WHERE description = $1`, description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by description: %w", err)
	}
	return e, nil
}

// Update incrementa la versión y conserva la marca de creación.
func (r *CategoryRepo) Update(ctx context.Context, e *entity.Category) error {
	modified, err := parseStamp(e.ModifiedTimestamp)
	if err != nil {
		return err
	}
	var ts stamps
	err = r.q.QueryRow(ctx,
		`UPDATE category SET description = $2, modified_timestamp = $3, version = version + 1
		 WHERE id = $1 RETURNING version, created_timestamp, modified_timestamp`,
		e.ID, e.Description, modified,
	).Scan(&e.Version, &ts.created, &ts.modified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return missing("category", e.ID)
		}
		return writeErr("Category", "update", err)
	}
	ts.apply(&e.Base)
	return nil
}

// List devuelve todas las filas ordenadas por id.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM category ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list category: %w", err)
	}
	defer rows.Close()
	var out []*entity.Category
	for rows.Next() {
		e, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Delete elimina la fila; los artículos que la referencian caen por ON DELETE CASCADE.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM category WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
