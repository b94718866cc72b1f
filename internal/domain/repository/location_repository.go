package repository

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location.
type LocationRepository interface {
	Create(ctx context.Context, l *entity.Location) error
	GetByID(ctx context.Context, id int64) (*entity.Location, error)
	GetByPosition(ctx context.Context, aisle string, shelf, tray int) (*entity.Location, error)
	Update(ctx context.Context, l *entity.Location) error
	List(ctx context.Context) ([]*entity.Location, error)
	// Delete elimina la ubicación y en cascada las existencias que la usan.
	Delete(ctx context.Context, id int64) error
}
