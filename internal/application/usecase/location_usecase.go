package usecase

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/dto"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
)

// LocationUseCase casos de uso CRUD para ubicaciones.
type LocationUseCase struct {
	repo  repository.LocationRepository
	clock clock.Clock
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, clk clock.Clock) *LocationUseCase {
	return &LocationUseCase{repo: repo, clock: clk}
}

// List devuelve todas las ubicaciones.
func (uc *LocationUseCase) List(ctx context.Context) ([]dto.LocationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *dto.ToLocationResponse(l))
	}
	return items, nil
}

// GetByID obtiene una ubicación por ID.
func (uc *LocationUseCase) GetByID(ctx context.Context, id int64) (*dto.LocationResponse, error) {
	l, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToLocationResponse(l), nil
}

func (uc *LocationUseCase) get(ctx context.Context, id int64) (*entity.Location, error) {
	l, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, notFound("Location", id)
	}
	return l, nil
}

// Create crea una ubicación si (pasillo, estante, bandeja) no existe aún.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.LocationRequest) (*dto.LocationResponse, error) {
	existing, err := uc.repo.GetByPosition(ctx, in.Aisle, in.Shelf, in.Tray)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyExists("Location")
	}
	l := &entity.Location{Aisle: in.Aisle, Shelf: in.Shelf, Tray: in.Tray}
	l.Stamp(uc.clock.Now())
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return dto.ToLocationResponse(l), nil
}

// Update copia pasillo, estante y bandeja.
func (uc *LocationUseCase) Update(ctx context.Context, id int64, in dto.LocationRequest) (*dto.LocationResponse, error) {
	l, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Aisle, l.Shelf, l.Tray = in.Aisle, in.Shelf, in.Tray
	l.Touch(uc.clock.Now())
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return dto.ToLocationResponse(l), nil
}

// Delete elimina una ubicación y las existencias que la usan.
func (uc *LocationUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
