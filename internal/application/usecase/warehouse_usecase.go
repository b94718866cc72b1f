package usecase

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/dto"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
)

// WarehouseUseCase casos de uso CRUD para existencias (artículo en ubicación).
type WarehouseUseCase struct {
	warehouses repository.WarehouseRepository
	articles   repository.ArticleRepository
	locations  repository.LocationRepository
	clock      clock.Clock
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repos repository.Repositories, clk clock.Clock) *WarehouseUseCase {
	return &WarehouseUseCase{
		warehouses: repos.Warehouses,
		articles:   repos.Articles,
		locations:  repos.Locations,
		clock:      clk,
	}
}

// List devuelve todas las existencias.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.warehouses.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *dto.ToWarehouseResponse(w))
	}
	return items, nil
}

// GetByID obtiene una existencia por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id int64) (*dto.WarehouseResponse, error) {
	w, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToWarehouseResponse(w), nil
}

func (uc *WarehouseUseCase) get(ctx context.Context, id int64) (*entity.Warehouse, error) {
	w, err := uc.warehouses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, notFound("Warehouse", id)
	}
	return w, nil
}

// Create registra un artículo en una ubicación. El par (artículo, ubicación) es único.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	w := &entity.Warehouse{Quantity: in.Quantity}
	if err := uc.resolveRefs(ctx, w, in); err != nil {
		return nil, err
	}
	existing, err := uc.warehouses.GetByArticleAndLocation(ctx, w.Article.ID, w.Location.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyExists("Warehouse")
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	w.Stamp(uc.clock.Now())
	if err := uc.warehouses.Create(ctx, w); err != nil {
		return nil, err
	}
	return dto.ToWarehouseResponse(w), nil
}

// Update sobrescribe cantidad, artículo y ubicación.
func (uc *WarehouseUseCase) Update(ctx context.Context, id int64, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	w, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	w.Quantity = in.Quantity
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := uc.resolveRefs(ctx, w, in); err != nil {
		return nil, err
	}
	w.Touch(uc.clock.Now())
	if err := uc.warehouses.Update(ctx, w); err != nil {
		return nil, err
	}
	return dto.ToWarehouseResponse(w), nil
}

// Delete elimina una existencia.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.warehouses.Delete(ctx, id)
}

func (uc *WarehouseUseCase) resolveRefs(ctx context.Context, w *entity.Warehouse, in dto.WarehouseRequest) error {
	a, err := uc.articles.GetByID(ctx, in.Article.ID)
	if err != nil {
		return err
	}
	if a == nil {
		return notFound("Article", in.Article.ID)
	}
	l, err := uc.locations.GetByID(ctx, in.Location.ID)
	if err != nil {
		return err
	}
	if l == nil {
		return notFound("Location", in.Location.ID)
	}
	w.Article, w.Location = a, l
	return nil
}
