package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// articleSelect carga el artículo con categoría, moneda y estado en una sola consulta.
const articleSelect = `
	SELECT a.id, a.version, a.created_timestamp, a.modified_timestamp, a.description, a.amount,
	       c.id, c.version, c.created_timestamp, c.modified_timestamp, c.description,
	       cu.id, cu.version, cu.created_timestamp, cu.modified_timestamp, cu.currency_code, cu.country,
	       s.id, s.version, s.created_timestamp, s.modified_timestamp, s.description
	FROM article a
	JOIN category c ON c.id = a.category_id
	JOIN currency cu ON cu.id = a.currency_id
	JOIN status s ON s.id = a.status_id`

// ArticleRepo implementación de ArticleRepository sobre PostgreSQL.
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// articleRow destino de escaneo de articleSelect.
type articleRow struct {
	a  *entity.Article
	ts [4]stamps
}

func newArticleRow() *articleRow {
	return &articleRow{a: &entity.Article{
		Category: &entity.Category{},
		Currency: &entity.Currency{},
		Status:   &entity.Status{},
	}}
}

func (r *articleRow) dest() []any {
	a := r.a
	d := append(baseDest(&a.Base, &r.ts[0]), &a.Description, &a.Amount)
	d = append(d, baseDest(&a.Category.Base, &r.ts[1])...)
	d = append(d, &a.Category.Description)
	d = append(d, baseDest(&a.Currency.Base, &r.ts[2])...)
	d = append(d, &a.Currency.CurrencyCode, &a.Currency.Country)
	d = append(d, baseDest(&a.Status.Base, &r.ts[3])...)
	return append(d, &a.Status.Description)
}

func (r *articleRow) article() *entity.Article {
	r.ts[0].apply(&r.a.Base)
	r.ts[1].apply(&r.a.Category.Base)
	r.ts[2].apply(&r.a.Currency.Base)
	r.ts[3].apply(&r.a.Status.Base)
	return r.a
}

func scanArticle(row scanner) (*entity.Article, error) {
	r := newArticleRow()
	if err := row.Scan(r.dest()...); err != nil {
		return nil, err
	}
	return r.article(), nil
}

func articleRefs(a *entity.Article) error {
	if a.Category == nil || a.Currency == nil || a.Status == nil {
		return fmt.Errorf("%w: article requiere category, currency y status", domain.ErrInvalidInput)
	}
	return nil
}

func (r *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	if err := articleRefs(a); err != nil {
		return err
	}
	created, modified, err := insertStamps(&a.Base)
	if err != nil {
		return err
	}
	err = r.q.QueryRow(ctx, `
		INSERT INTO article (version, created_timestamp, modified_timestamp, description, amount, category_id, currency_id, status_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		a.Version, created, modified, a.Description, a.Amount, a.Category.ID, a.Currency.ID, a.Status.ID,
	).Scan(&a.ID)
	if err != nil {
		return writeErr("Article", "insert", err)
	}
	return nil
}

func (r *ArticleRepo) get(ctx context.Context, where string, args ...any) (*entity.Article, error) {
	a, err := scanArticle(r.q.QueryRow(ctx, articleSelect+` WHERE `+where, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

func (r *ArticleRepo) GetByID(ctx context.Context, id int64) (*entity.Article, error) {
	return r.get(ctx, `a.id = $1`, id)
}

func (r *ArticleRepo) GetByDescription(ctx context.Context, description string) (*entity.Article, error) {
	return r.get(ctx, `a.description = $1`, description)
}

func (r *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	if err := articleRefs(a); err != nil {
		return err
	}
	modified, err := parseStamp(a.ModifiedTimestamp)
	if err != nil {
		return err
	}
	var ts stamps
	err = r.q.QueryRow(ctx, `
		UPDATE article
		SET description = $2, amount = $3, category_id = $4, currency_id = $5, status_id = $6,
		    modified_timestamp = $7, version = version + 1
		WHERE id = $1 RETURNING version, created_timestamp, modified_timestamp`,
		a.ID, a.Description, a.Amount, a.Category.ID, a.Currency.ID, a.Status.ID, modified,
	).Scan(&a.Version, &ts.created, &ts.modified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return missing("article", a.ID)
		}
		return writeErr("Article", "update", err)
	}
	ts.apply(&a.Base)
	return nil
}

func (r *ArticleRepo) list(ctx context.Context, tail string, args ...any) ([]*entity.Article, error) {
	rows, err := r.q.Query(ctx, articleSelect+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list article: %w", err)
	}
	defer rows.Close()
	var out []*entity.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	return r.list(ctx, ` ORDER BY a.id`)
}

// ListLowStock artículos con al menos una existencia de cantidad <= limit.
func (r *ArticleRepo) ListLowStock(ctx context.Context, limit int) ([]*entity.Article, error) {
	return r.list(ctx, `
	WHERE a.id IN (SELECT w.article_id FROM warehouse w WHERE w.quantity <= $1)
	ORDER BY a.id`, limit)
}

// Delete elimina el artículo; sus existencias caen por ON DELETE CASCADE.
func (r *ArticleRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM article WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
