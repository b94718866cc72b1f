package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
)

// Article artículo del catálogo. Clave natural: Description.
// Category, Currency y Status son obligatorios.
type Article struct {
	Base
	Description string
	Amount      decimal.Decimal
	Category    *Category
	Currency    *Currency
	Status      *Status
}

// Validate comprueba que el precio sea positivo.
func (a *Article) Validate() error {
	if !a.Amount.IsPositive() {
		return fmt.Errorf("%w: Please enter a positive number for the amount!", domain.ErrInvalidFormat)
	}
	return nil
}
