package repository

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
)

// BarcodeMappingRepository define el puerto de persistencia para BarcodeMapping.
type BarcodeMappingRepository interface {
	Create(ctx context.Context, m *entity.BarcodeMapping) error
	GetByID(ctx context.Context, id int64) (*entity.BarcodeMapping, error)
	// GetByEAN devuelve el primer mapeo (menor id) con ese EAN.
	GetByEAN(ctx context.Context, ean string) (*entity.BarcodeMapping, error)
	GetByEANAndDescription(ctx context.Context, ean, description string) (*entity.BarcodeMapping, error)
	Update(ctx context.Context, m *entity.BarcodeMapping) error
	List(ctx context.Context) ([]*entity.BarcodeMapping, error)
	Delete(ctx context.Context, id int64) error
}
