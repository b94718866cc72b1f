package repository

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (existencias).
type WarehouseRepository interface {
	Create(ctx context.Context, w *entity.Warehouse) error
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	GetByArticleAndLocation(ctx context.Context, articleID, locationID int64) (*entity.Warehouse, error)
	Update(ctx context.Context, w *entity.Warehouse) error
	List(ctx context.Context) ([]*entity.Warehouse, error)
	Delete(ctx context.Context, id int64) error
}
