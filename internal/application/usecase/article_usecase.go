package usecase

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/dto"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
)

// ArticleUseCase casos de uso CRUD para artículos.
type ArticleUseCase struct {
	articles   repository.ArticleRepository
	categories repository.CategoryRepository
	currencies repository.CurrencyRepository
	statuses   repository.StatusRepository
	clock      clock.Clock
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(repos repository.Repositories, clk clock.Clock) *ArticleUseCase {
	return &ArticleUseCase{
		articles:   repos.Articles,
		categories: repos.Categories,
		currencies: repos.Currencies,
		statuses:   repos.Statuses,
		clock:      clk,
	}
}

// List devuelve todos los artículos con sus relaciones.
func (uc *ArticleUseCase) List(ctx context.Context) ([]dto.ArticleResponse, error) {
	list, err := uc.articles.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *dto.ToArticleResponse(a))
	}
	return items, nil
}

// GetByID obtiene un artículo por ID.
func (uc *ArticleUseCase) GetByID(ctx context.Context, id int64) (*dto.ArticleResponse, error) {
	a, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToArticleResponse(a), nil
}

func (uc *ArticleUseCase) get(ctx context.Context, id int64) (*entity.Article, error) {
	a, err := uc.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFound("Article", id)
	}
	return a, nil
}

// Create crea un artículo. Rechaza descripciones repetidas y precios no positivos.
func (uc *ArticleUseCase) Create(ctx context.Context, in dto.ArticleRequest) (*dto.ArticleResponse, error) {
	existing, err := uc.articles.GetByDescription(ctx, in.Description)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyExists("Article")
	}
	a := &entity.Article{Description: in.Description, Amount: in.Amount}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := uc.resolveRefs(ctx, a, in); err != nil {
		return nil, err
	}
	a.Stamp(uc.clock.Now())
	if err := uc.articles.Create(ctx, a); err != nil {
		return nil, err
	}
	return dto.ToArticleResponse(a), nil
}

// Update sobrescribe descripción, precio y referencias del artículo.
func (uc *ArticleUseCase) Update(ctx context.Context, id int64, in dto.ArticleRequest) (*dto.ArticleResponse, error) {
	a, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Description = in.Description
	a.Amount = in.Amount
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := uc.resolveRefs(ctx, a, in); err != nil {
		return nil, err
	}
	a.Touch(uc.clock.Now())
	if err := uc.articles.Update(ctx, a); err != nil {
		return nil, err
	}
	return dto.ToArticleResponse(a), nil
}

// Delete elimina un artículo y sus existencias.
func (uc *ArticleUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.articles.Delete(ctx, id)
}

func (uc *ArticleUseCase) resolveRefs(ctx context.Context, a *entity.Article, in dto.ArticleRequest) error {
	cat, err := uc.categories.GetByID(ctx, in.Category.ID)
	if err != nil {
		return err
	}
	if cat == nil {
		return notFound("Category", in.Category.ID)
	}
	cur, err := uc.currencies.GetByID(ctx, in.Currency.ID)
	if err != nil {
		return err
	}
	if cur == nil {
		return notFound("Currency", in.Currency.ID)
	}
	st, err := uc.statuses.GetByID(ctx, in.Status.ID)
	if err != nil {
		return err
	}
	if st == nil {
		return notFound("Status", in.Status.ID)
	}
	a.Category, a.Currency, a.Status = cat, cur, st
	return nil
}
