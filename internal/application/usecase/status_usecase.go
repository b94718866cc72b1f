package usecase

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/dto"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
)

// StatusUseCase casos de uso CRUD para estados.
type StatusUseCase struct {
	repo  repository.StatusRepository
	clock clock.Clock
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(repo repository.StatusRepository, clk clock.Clock) *StatusUseCase {
	return &StatusUseCase{repo: repo, clock: clk}
}

// List devuelve todos los estados.
func (uc *StatusUseCase) List(ctx context.Context) ([]dto.StatusResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StatusResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *dto.ToStatusResponse(s))
	}
	return items, nil
}

// GetByID obtiene un estado por ID.
func (uc *StatusUseCase) GetByID(ctx context.Context, id int64) (*dto.StatusResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToStatusResponse(s), nil
}

func (uc *StatusUseCase) get(ctx context.Context, id int64) (*entity.Status, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, notFound("Status", id)
	}
	return s, nil
}

// Create crea un estado si la descripción no existe aún.
func (uc *StatusUseCase) Create(ctx context.Context, in dto.StatusRequest) (*dto.StatusResponse, error) {
	existing, err := uc.repo.GetByDescription(ctx, in.Description)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyExists("Status")
	}
	s := &entity.Status{Description: in.Description}
	s.Stamp(uc.clock.Now())
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return dto.ToStatusResponse(s), nil
}

// Update copia los campos modificables y refresca la marca de modificación.
func (uc *StatusUseCase) Update(ctx context.Context, id int64, in dto.StatusRequest) (*dto.StatusResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Description = in.Description
	s.Touch(uc.clock.Now())
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return dto.ToStatusResponse(s), nil
}

// Delete elimina un estado; sus artículos se borran en cascada.
func (uc *StatusUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
