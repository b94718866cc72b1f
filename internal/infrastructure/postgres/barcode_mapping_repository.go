package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

var _ repository.BarcodeMappingRepository = (*BarcodeMappingRepo)(nil)

const barcodeColumns = `id, version, created_timestamp, modified_timestamp, ean, description`

// BarcodeMappingRepo implementación de BarcodeMappingRepository sobre PostgreSQL.
type BarcodeMappingRepo struct {
	q Querier
}

// NewBarcodeMappingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBarcodeMappingRepository(q Querier) *BarcodeMappingRepo {
	return &BarcodeMappingRepo{q: q}
}

func scanBarcode(row scanner) (*entity.BarcodeMapping, error) {
	var (
		m  entity.BarcodeMapping
		ts stamps
	)
	if err := row.Scan(append(baseDest(&m.Base, &ts), &m.EAN, &m.Description)...); err != nil {
		return nil, err
	}
	ts.apply(&m.Base)
	return &m, nil
}

func (r *BarcodeMappingRepo) Create(ctx context.Context, m *entity.BarcodeMapping) error {
	created, modified, err := insertStamps(&m.Base)
	if err != nil {
		return err
	}
	err = r.q.QueryRow(ctx, `
		INSERT INTO barcode_mapping (version, created_timestamp, modified_timestamp, ean, description)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		m.Version, created, modified, m.EAN, m.Description,
	).Scan(&m.ID)
	if err != nil {
		return writeErr("Barcode mapping", "insert", err)
	}
	return nil
}

func (r *BarcodeMappingRepo) get(ctx context.Context, where string, args ...any) (*entity.BarcodeMapping, error) {
	m, err := scanBarcode(r.q.QueryRow(ctx, `SELECT `+barcodeColumns+` FROM barcode_mapping WHERE `+where, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get barcode mapping: %w", err)
	}
	return m, nil
}

func (r *BarcodeMappingRepo) GetByID(ctx context.Context, id int64) (*entity.BarcodeMapping, error) {
	return r.get(ctx, `id = $1`, id)
}

// GetByEAN el mismo EAN puede tener varias descripciones; gana la de menor id.
func (r *BarcodeMappingRepo) GetByEAN(ctx context.Context, ean string) (*entity.BarcodeMapping, error) {
	return r.get(ctx, `ean = $1 ORDER BY id LIMIT 1`, ean)
}

func (r *BarcodeMappingRepo) GetByEANAndDescription(ctx context.Context, ean, description string) (*entity.BarcodeMapping, error) {
	return r.get(ctx, `ean = $1 AND description = $2`, ean, description)
}

func (r *BarcodeMappingRepo) Update(ctx context.Context, m *entity.BarcodeMapping) error {
	modified, err := parseStamp(m.ModifiedTimestamp)
	if err != nil {
		return err
	}
	var ts stamps
	err = r.q.QueryRow(ctx, `
		UPDATE barcode_mapping SET ean = $2, description = $3, modified_timestamp = $4, version = version + 1
		WHERE id = $1 RETURNING version, created_timestamp, modified_timestamp`,
		m.ID, m.EAN, m.Description, modified,
	).Scan(&m.Version, &ts.created, &ts.modified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return missing("barcode mapping", m.ID)
		}
		return writeErr("Barcode mapping", "update", err)
	}
	ts.apply(&m.Base)
	return nil
}

func (r *BarcodeMappingRepo) List(ctx context.Context) ([]*entity.BarcodeMapping, error) {
	rows, err := r.q.Query(ctx, `SELECT `+barcodeColumns+` FROM barcode_mapping ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list barcode mapping: %w", err)
	}
	defer rows.Close()
	var out []*entity.BarcodeMapping
	for rows.Next() {
		m, err := scanBarcode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan barcode mapping: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *BarcodeMappingRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM barcode_mapping WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete barcode mapping: %w", err)
	}
	return nil
}
