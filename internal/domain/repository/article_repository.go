package repository

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
)

// ArticleRepository define el puerto de persistencia para Article.
// Los artículos se devuelven con Category, Currency y Status cargados.
type ArticleRepository interface {
	Create(ctx context.Context, a *entity.Article) error
	GetByID(ctx context.Context, id int64) (*entity.Article, error)
	GetByDescription(ctx context.Context, description string) (*entity.Article, error)
	Update(ctx context.Context, a *entity.Article) error
	List(ctx context.Context) ([]*entity.Article, error)
	// ListLowStock artículos con alguna existencia de cantidad <= limit, sin repetidos y ordenados por id.
	ListLowStock(ctx context.Context, limit int) ([]*entity.Article, error)
	Delete(ctx context.Context, id int64) error
}
