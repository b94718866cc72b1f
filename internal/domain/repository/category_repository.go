package repository

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetByDescription(ctx context.Context, description string) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	List(ctx context.Context) ([]*entity.Category, error)
	// Delete elimina la categoría y en cascada sus artículos y existencias.
	Delete(ctx context.Context, id int64) error
}
