package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/dto"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
)

// ScanDefaults referencias con las que se crea el artículo de un código escaneado.
type ScanDefaults struct {
	CategoryID int64
	CurrencyID int64
	StatusID   int64
}

// scanAmount precio provisional de un artículo creado por escaneo.
var scanAmount = decimal.RequireFromString("1.00")

// BarcodeMappingUseCase CRUD de mapeos EAN y alta de artículos por escaneo.
type BarcodeMappingUseCase struct {
	mappings repository.BarcodeMappingRepository
	repos    repository.Repositories
	defaults ScanDefaults
	clock    clock.Clock
}

// NewBarcodeMappingUseCase construye el caso de uso.
func NewBarcodeMappingUseCase(repos repository.Repositories, defaults ScanDefaults, clk clock.Clock) *BarcodeMappingUseCase {
	return &BarcodeMappingUseCase{
		mappings: repos.BarcodeMappings,
		repos:    repos,
		defaults: defaults,
		clock:    clk,
	}
}

// List devuelve todos los mapeos.
func (uc *BarcodeMappingUseCase) List(ctx context.Context) ([]dto.BarcodeMappingResponse, error) {
	list, err := uc.mappings.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BarcodeMappingResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.ToBarcodeMappingResponse(m))
	}
	return items, nil
}

// GetByID obtiene un mapeo por ID.
func (uc *BarcodeMappingUseCase) GetByID(ctx context.Context, id int64) (*dto.BarcodeMappingResponse, error) {
	m, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToBarcodeMappingResponse(m), nil
}

func (uc *BarcodeMappingUseCase) get(ctx context.Context, id int64) (*entity.BarcodeMapping, error) {
	m, err := uc.mappings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, notFound("Barcode mapping", id)
	}
	return m, nil
}

// Create crea un mapeo si el par (EAN, descripción) no existe aún.
func (uc *BarcodeMappingUseCase) Create(ctx context.Context, in dto.BarcodeMappingRequest) (*dto.BarcodeMappingResponse, error) {
	existing, err := uc.mappings.GetByEANAndDescription(ctx, in.EAN, in.Description)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyExists("Barcode mapping")
	}
	m := &entity.BarcodeMapping{EAN: in.EAN, Description: in.Description}
	m.Stamp(uc.clock.Now())
	if err := uc.mappings.Create(ctx, m); err != nil {
		return nil, err
	}
	return dto.ToBarcodeMappingResponse(m), nil
}

// Update copia EAN y descripción.
func (uc *BarcodeMappingUseCase) Update(ctx context.Context, id int64, in dto.BarcodeMappingRequest) (*dto.BarcodeMappingResponse, error) {
	m, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	m.EAN = in.EAN
	m.Description = in.Description
	m.Touch(uc.clock.Now())
	if err := uc.mappings.Update(ctx, m); err != nil {
		return nil, err
	}
	return dto.ToBarcodeMappingResponse(m), nil
}

// Delete elimina un mapeo.
func (uc *BarcodeMappingUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.mappings.Delete(ctx, id)
}

// Scan crea un artículo a partir de un EAN registrado, con las referencias por defecto
// y precio 1.00. No crea nada si el EAN o alguna referencia no existen.
func (uc *BarcodeMappingUseCase) Scan(ctx context.Context, ean string) (*dto.ArticleResponse, error) {
	m, err := uc.mappings.GetByEAN(ctx, ean)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: Barcode mapping does not exist with ean: %s", domain.ErrNotFound, ean)
	}

	existing, err := uc.repos.Articles.GetByDescription(ctx, m.Description)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyExists("Article")
	}

	cat, err := uc.repos.Categories.GetByID(ctx, uc.defaults.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, notFound("Category", uc.defaults.CategoryID)
	}
	cur, err := uc.repos.Currencies.GetByID(ctx, uc.defaults.CurrencyID)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, notFound("Currency", uc.defaults.CurrencyID)
	}
	st, err := uc.repos.Statuses.GetByID(ctx, uc.defaults.StatusID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, notFound("Status", uc.defaults.StatusID)
	}

	a := &entity.Article{
		Description: m.Description,
		Amount:      scanAmount,
		Category:    cat,
		Currency:    cur,
		Status:      st,
	}
	a.Stamp(uc.clock.Now())
	if err := uc.repos.Articles.Create(ctx, a); err != nil {
		return nil, err
	}
	return dto.ToArticleResponse(a), nil
}
