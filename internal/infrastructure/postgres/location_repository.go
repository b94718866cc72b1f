package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

const locationColumns = `id, version, created_timestamp, modified_timestamp, aisle, shelf, tray`

// LocationRepo implementación de LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func locationDest(l *entity.Location, ts *stamps) []any {
	return append(baseDest(&l.Base, ts), &l.Aisle, &l.Shelf, &l.Tray)
}

func scanLocation(row scanner) (*entity.Location, error) {
	var (
		l  entity.Location
		ts stamps
	)
	if err := row.Scan(locationDest(&l, &ts)...); err != nil {
		return nil, err
	}
	ts.apply(&l.Base)
	return &l, nil
}

func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	created, modified, err := insertStamps(&l.Base)
	if err != nil {
		return err
	}
	err = r.q.QueryRow(ctx, `
		INSERT INTO location (version, created_timestamp, modified_timestamp, aisle, shelf, tray)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		l.Version, created, modified, l.Aisle, l.Shelf, l.Tray,
	).Scan(&l.ID)
	if err != nil {
		return writeErr("Location", "insert", err)
	}
	return nil
}

func (r *LocationRepo) GetByID(ctx context.Context, id int64) (*entity.Location, error) {
	l, err := scanLocation(r.q.QueryRow(ctx, `SELECT `+locationColumns+` FROM location WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

func (r *LocationRepo) GetByPosition(ctx context.Context, aisle string, shelf, tray int) (*entity.Location, error) {
	l, err := scanLocation(r.q.QueryRow(ctx,
		`SELECT `+locationColumns+` FROM location WHERE aisle = $1 AND shelf = $2 AND tray = $3`,
		aisle, shelf, tray))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location by position: %w", err)
	}
	return l, nil
}

func (r *LocationRepo) Update(ctx context.Context, l *entity.Location) error {
	modified, err := parseStamp(l.ModifiedTimestamp)
	if err != nil {
		return err
	}
	var ts stamps
	err = r.q.QueryRow(ctx, `
		UPDATE location SET aisle = $2, shelf = $3, tray = $4, modified_timestamp = $5, version = version + 1
		WHERE id = $1 RETURNING version, created_timestamp, modified_timestamp`,
		l.ID, l.Aisle, l.Shelf, l.Tray, modified,
	).Scan(&l.Version, &ts.created, &ts.modified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return missing("location", l.ID)
		}
		return writeErr("Location", "update", err)
	}
	ts.apply(&l.Base)
	return nil
}

func (r *LocationRepo) List(ctx context.Context) ([]*entity.Location, error) {
	rows, err := r.q.Query(ctx, `SELECT `+locationColumns+` FROM location ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list location: %w", err)
	}
	defer rows.Close()
	var out []*entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Delete elimina la ubicación; sus existencias caen por ON DELETE CASCADE.
func (r *LocationRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM location WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}
