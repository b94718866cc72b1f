package usecase

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/dto"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	clock clock.Clock
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, clk clock.Clock) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, clock: clk}
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.ToCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(c), nil
}

func (uc *CategoryUseCase) get(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("Category", id)
	}
	return c, nil
}

// Create crea una categoría si la descripción no existe aún.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByDescription(ctx, in.Description)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyExists("Category")
	}
	c := &entity.Category{Description: in.Description}
	c.Stamp(uc.clock.Now())
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(c), nil
}

// Update copia la descripción y refresca la marca de modificación.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Description = in.Description
	c.Touch(uc.clock.Now())
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(c), nil
}

// Delete elimina una categoría junto con sus artículos y existencias.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
