package repository

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
)

// StatusRepository define el puerto de persistencia para Status.
// GetByID y GetByDescription devuelven (nil, nil) si no existe.
type StatusRepository interface {
	Create(ctx context.Context, s *entity.Status) error
	GetByID(ctx context.Context, id int64) (*entity.Status, error)
	GetByDescription(ctx context.Context, description string) (*entity.Status, error)
	Update(ctx context.Context, s *entity.Status) error
	List(ctx context.Context) ([]*entity.Status, error)
	Delete(ctx context.Context, id int64) error
}
