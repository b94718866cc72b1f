package usecase

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/dto"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
)

// CurrencyUseCase casos de uso CRUD para monedas.
type CurrencyUseCase struct {
	repo  repository.CurrencyRepository
	clock clock.Clock
}

// NewCurrencyUseCase construye el caso de uso.
func NewCurrencyUseCase(repo repository.CurrencyRepository, clk clock.Clock) *CurrencyUseCase {
	return &CurrencyUseCase{repo: repo, clock: clk}
}

// List devuelve todas las monedas.
func (uc *CurrencyUseCase) List(ctx context.Context) ([]dto.CurrencyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CurrencyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.ToCurrencyResponse(c))
	}
	return items, nil
}

// GetByID obtiene una moneda por ID.
func (uc *CurrencyUseCase) GetByID(ctx context.Context, id int64) (*dto.CurrencyResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToCurrencyResponse(c), nil
}

func (uc *CurrencyUseCase) get(ctx context.Context, id int64) (*entity.Currency, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("Currency", id)
	}
	return c, nil
}

// Create crea una moneda si el par (código, país) no existe aún.
func (uc *CurrencyUseCase) Create(ctx context.Context, in dto.CurrencyRequest) (*dto.CurrencyResponse, error) {
	existing, err := uc.repo.GetByCodeAndCountry(ctx, in.CurrencyCode, in.Country)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyExists("Currency")
	}
	c := &entity.Currency{CurrencyCode: in.CurrencyCode, Country: in.Country}
	c.Stamp(uc.clock.Now())
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return dto.ToCurrencyResponse(c), nil
}

// Update copia código y país.
func (uc *CurrencyUseCase) Update(ctx context.Context, id int64, in dto.CurrencyRequest) (*dto.CurrencyResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.CurrencyCode = in.CurrencyCode
	c.Country = in.Country
	c.Touch(uc.clock.Now())
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return dto.ToCurrencyResponse(c), nil
}

// Delete elimina una moneda junto con sus artículos y existencias.
func (uc *CurrencyUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
