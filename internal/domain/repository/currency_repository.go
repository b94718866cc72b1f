package repository

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
)

// CurrencyRepository define el puerto de persistencia para Currency.
type CurrencyRepository interface {
	Create(ctx context.Context, c *entity.Currency) error
	GetByID(ctx context.Context, id int64) (*entity.Currency, error)
	GetByCodeAndCountry(ctx context.Context, code, country string) (*entity.Currency, error)
	Update(ctx context.Context, c *entity.Currency) error
	List(ctx context.Context) ([]*entity.Currency, error)
	Delete(ctx context.Context, id int64) error
}
