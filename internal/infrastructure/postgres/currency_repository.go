package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

var _ repository.CurrencyRepository = (*CurrencyRepo)(nil)

const currencyColumns = `id, version, created_timestamp, modified_timestamp, currency_code, country`

// CurrencyRepo implementación de CurrencyRepository sobre PostgreSQL.
type CurrencyRepo struct {
	q Querier
}

// NewCurrencyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCurrencyRepository(q Querier) *CurrencyRepo {
	return &CurrencyRepo{q: q}
}

func scanCurrency(row scanner) (*entity.Currency, error) {
	var (
		c  entity.Currency
		ts stamps
	)
	if err := row.Scan(append(baseDest(&c.Base, &ts), &c.CurrencyCode, &c.Country)...); err != nil {
		return nil, err
	}
	ts.apply(&c.Base)
	return &c, nil
}

func (r *CurrencyRepo) Create(ctx context.Context, c *entity.Currency) error {
	created, modified, err := insertStamps(&c.Base)
	if err != nil {
		return err
	}
	err = r.q.QueryRow(ctx, `
		INSERT INTO currency (version, created_timestamp, modified_timestamp, currency_code, country)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.Version, created, modified, c.CurrencyCode, c.Country,
	).Scan(&c.ID)
	if err != nil {
		return writeErr("Currency", "insert", err)
	}
	return nil
}

func (r *CurrencyRepo) GetByID(ctx context.Context, id int64) (*entity.Currency, error) {
	c, err := scanCurrency(r.q.QueryRow(ctx, `SELECT `+currencyColumns+` FROM currency WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return c, nil
}

func (r *CurrencyRepo) GetByCodeAndCountry(ctx context.Context, code, country string) (*entity.Currency, error) {
	c, err := scanCurrency(r.q.QueryRow(ctx,
		`SELECT `+currencyColumns+` FROM currency WHERE currency_code = $1 AND country = $2`, code, country))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get currency by code: %w", err)
	}
	return c, nil
}

func (r *CurrencyRepo) Update(ctx context.Context, c *entity.Currency) error {
	modified, err := parseStamp(c.ModifiedTimestamp)
	if err != nil {
		return err
	}
	var ts stamps
	err = r.q.QueryRow(ctx, `
		UPDATE currency SET currency_code = $2, country = $3, modified_timestamp = $4, version = version + 1
		WHERE id = $1 RETURNING version, created_timestamp, modified_timestamp`,
		c.ID, c.CurrencyCode, c.Country, modified,
	).Scan(&c.Version, &ts.created, &ts.modified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return missing("currency", c.ID)
		}
		return writeErr("Currency", "update", err)
	}
	ts.apply(&c.Base)
	return nil
}

func (r *CurrencyRepo) List(ctx context.Context) ([]*entity.Currency, error) {
	rows, err := r.q.Query(ctx, `SELECT `+currencyColumns+` FROM currency ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list currency: %w", err)
	}
	defer rows.Close()
	var out []*entity.Currency
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CurrencyRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM currency WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete currency: %w", err)
	}
	return nil
}
