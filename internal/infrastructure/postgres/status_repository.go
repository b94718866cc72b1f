package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

var _ repository.StatusRepository = (*StatusRepo)(nil)

const statusColumns = `id, version, created_timestamp, modified_timestamp, description`

// StatusRepo implementación de StatusRepository sobre PostgreSQL (usable con pool o tx).
type StatusRepo struct {
	q Querier
}

// NewStatusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{q: q}
}

func scanStatus(row scanner) (*entity.Status, error) {
	var (
		e  entity.Status
		ts stamps
	)
	if err := row.Scan(append(baseDest(&e.Base, &ts), &e.Description)...); err != nil {
		return nil, err
	}
	ts.apply(&e.Base)
	return &e, nil
}

// Create inserta y asigna el id generado.
func (r *StatusRepo) Create(ctx context.Context, e *entity.Status) error {
	created, modified, err := insertStamps(&e.Base)
	if err != nil {
		return err
	}
	err = r.q.QueryRow(ctx,
		`INSERT INTO status (version, created_timestamp, modified_timestamp, description) VALUES ($1, $2, $3, $4) RETURNING id`,
		e.Version, created, modified, e.Description,
	).Scan(&e.ID)
	if err != nil {
		return writeErr("Status", "insert", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *StatusRepo) GetByID(ctx context.Context, id int64) (*entity.Status, error) {
	e, err := scanStatus(r.q.QueryRow(ctx, `SELECT `+statusColumns+` FROM status WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status: %w", err)
	}
	return e, nil
}

// GetByDescription busca por la clave natural.
func (r *StatusRepo) GetByDescription(ctx context.Context, description string) (*entity.Status, error) {
	e, err := scanStatus(r.q.QueryRow(ctx, `SELECT `+statusColumns+` FROM status WHERE description = $1`, description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status by description: %w", err)
	}
	return e, nil
}

// Update incrementa la versión y conserva la marca de creación.
func (r *StatusRepo) Update(ctx context.Context, e *entity.Status) error {
	modified, err := parseStamp(e.ModifiedTimestamp)
	if err != nil {
		return err
	}
	var ts stamps
	err = r.q.QueryRow(ctx,
		`UPDATE status SET description = $2, modified_timestamp = $3, version = version + 1
		 WHERE id = $1 RETURNING version, created_timestamp, modified_timestamp`,
		e.ID, e.Description, modified,
	).Scan(&e.Version, &ts.created, &ts.modified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return missing("status", e.ID)
		}
		return writeErr("Status", "update", err)
	}
	ts.apply(&e.Base)
	return nil
}

// List devuelve todas las filas ordenadas por id.
func (r *StatusRepo) List(ctx context.Context) ([]*entity.Status, error) {
	rows, err := r.q.Query(ctx, `SELECT `+statusColumns+` FROM status ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list status: %w", err)
	}
	defer rows.Close()
	var out []*entity.Status
	for rows.Next() {
		e, err := scanStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Delete elimina la fila; los artículos que la referencian caen por ON DELETE CASCADE.
func (r *StatusRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM status WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	return nil
}
