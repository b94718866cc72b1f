package entity

import (
	"fmt"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
)

// Warehouse existencia de un artículo en una ubicación. Clave natural: (Article, Location).
type Warehouse struct {
	Base
	Quantity int
	Article  *Article
	Location *Location
}

// Validate comprueba que la cantidad sea positiva.
func (w *Warehouse) Validate() error {
	if w.Quantity <= 0 {
		return fmt.Errorf("%w: Please enter a positive number for the quantity!", domain.ErrInvalidFormat)
	}
	return nil
}
