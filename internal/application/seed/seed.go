// Package seed carga los datos iniciales de cada perfil (dev, prod) de forma idempotente.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/clock"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

// Perfiles soportados.
const (
	ProfileDev  = "dev"
	ProfileProd = "prod"
	ProfileNone = "none"
)

type article struct {
	description string
	amount      string
	category    string
	currency    [2]string
	status      string
}

type stock struct {
	article  string
	position entity.Location
	quantity int
}

// Data conjunto de registros de un perfil.
type Data struct {
	Statuses   []string
	Categories []string
	Currencies [][2]string // código, país
	Locations  []entity.Location
	articles   []article
	stock      []stock
}

// DataFor devuelve los datos del perfil indicado.
func DataFor(profile string) (Data, error) {
	base := Data{
		Statuses:   []string{"CREATED", "ACTIVE", "INACTIVE"},
		Categories: []string{"Standard"},
		Currencies: [][2]string{{"CHF", "Schweiz"}},
	}
	switch profile {
	case ProfileNone:
		return Data{}, nil
	case ProfileProd:
		return base, nil
	case ProfileDev:
		base.Categories = append(base.Categories, "Schuhe", "Sport", "Hemden", "Röcke")
		base.Currencies = append(base.Currencies, [2]string{"EUR", "Deutschland"}, [2]string{"USD", "USA"}, [2]string{"CAD", "Canada"})
		base.Locations = []entity.Location{
			{Aisle: "A", Shelf: 1, Tray: 1},
			{Aisle: "A", Shelf: 1, Tray: 2},
			{Aisle: "A", Shelf: 2, Tray: 1},
			{Aisle: "B", Shelf: 1, Tray: 1},
		}
		base.articles = []article{
			{description: "Grüner Maxirock", amount: "79.90", category: "Röcke", currency: [2]string{"CHF", "Schweiz"}, status: "ACTIVE"},
		}
		base.stock = []stock{
			{article: "Grüner Maxirock", position: entity.Location{Aisle: "A", Shelf: 1, Tray: 1}, quantity: 200},
		}
		return base, nil
	}
	return Data{}, fmt.Errorf("%w: perfil desconocido %q", domain.ErrInvalidInput, profile)
}

// Result cantidad de registros creados en la ejecución.
type Result struct {
	Created int
}

// Seeder inserta los datos del perfil que aún no existen, todo en una transacción.
type Seeder struct {
	tx    inventory.TxRunner
	clock clock.Clock
	log   *logger.Logger
}

// New construye el seeder.
func New(tx inventory.TxRunner, clk clock.Clock, log *logger.Logger) *Seeder {
	return &Seeder{tx: tx, clock: clk, log: log.Component("seed")}
}

// Run aplica el perfil. Ejecutarlo varias veces no duplica registros.
func (s *Seeder) Run(ctx context.Context, profile string) (*Result, error) {
	data, err := DataFor(profile)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	err = s.tx.Run(ctx, func(repos repository.Repositories) error {
		return s.apply(ctx, repos, data, res)
	})
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", profile, err)
	}
	s.log.Info().Str("profile", profile).Int("created", res.Created).Msg("datos iniciales cargados")
	return res, nil
}

func (s *Seeder) apply(ctx context.Context, repos repository.Repositories, d Data, res *Result) error {
	now := s.clock.Now()

	for _, desc := range d.Statuses {
		found, err := repos.Statuses.GetByDescription(ctx, desc)
		if err != nil {
			return err
		}
		if found == nil {
			st := &entity.Status{Description: desc}
			st.Stamp(now)
			if err := repos.Statuses.Create(ctx, st); err != nil {
				return err
			}
			res.Created++
		}
	}
	for _, desc := range d.Categories {
		found, err := repos.Categories.GetByDescription(ctx, desc)
		if err != nil {
			return err
		}
		if found == nil {
			c := &entity.Category{Description: desc}
			c.Stamp(now)
			if err := repos.Categories.Create(ctx, c); err != nil {
				return err
			}
			res.Created++
		}
	}
	for _, cur := range d.Currencies {
		found, err := repos.Currencies.GetByCodeAndCountry(ctx, cur[0], cur[1])
		if err != nil {
			return err
		}
		if found == nil {
			c := &entity.Currency{CurrencyCode: cur[0], Country: cur[1]}
			c.Stamp(now)
			if err := repos.Currencies.Create(ctx, c); err != nil {
				return err
			}
			res.Created++
		}
	}
	for _, l := range d.Locations {
		found, err := repos.Locations.GetByPosition(ctx, l.Aisle, l.Shelf, l.Tray)
		if err != nil {
			return err
		}
		if found == nil {
			loc := &entity.Location{Aisle: l.Aisle, Shelf: l.Shelf, Tray: l.Tray}
			loc.Stamp(now)
			if err := repos.Locations.Create(ctx, loc); err != nil {
				return err
			}
			res.Created++
		}
	}
	for _, a := range d.articles {
		created, err := s.article(ctx, repos, a)
		if err != nil {
			return err
		}
		if created {
			res.Created++
		}
	}
	for _, st := range d.stock {
		created, err := s.stock(ctx, repos, st)
		if err != nil {
			return err
		}
		if created {
			res.Created++
		}
	}
	return nil
}

func (s *Seeder) article(ctx context.Context, repos repository.Repositories, a article) (bool, error) {
	found, err := repos.Articles.GetByDescription(ctx, a.description)
	if err != nil || found != nil {
		return false, err
	}
	cat, err := repos.Categories.GetByDescription(ctx, a.category)
	if err != nil {
		return false, err
	}
	cur, err := repos.Currencies.GetByCodeAndCountry(ctx, a.currency[0], a.currency[1])
	if err != nil {
		return false, err
	}
	st, err := repos.Statuses.GetByDescription(ctx, a.status)
	if err != nil {
		return false, err
	}
	if cat == nil || cur == nil || st == nil {
		return false, fmt.Errorf("%w: referencias de %q", domain.ErrNotFound, a.description)
	}
	art := &entity.Article{
		Description: a.description,
		Amount:      decimal.RequireFromString(a.amount),
		Category:    cat,
		Currency:    cur,
		Status:      st,
	}
	art.Stamp(s.clock.Now())
	return true, repos.Articles.Create(ctx, art)
}

func (s *Seeder) stock(ctx context.Context, repos repository.Repositories, st stock) (bool, error) {
	art, err := repos.Articles.GetByDescription(ctx, st.article)
	if err != nil {
		return false, err
	}
	loc, err := repos.Locations.GetByPosition(ctx, st.position.Aisle, st.position.Shelf, st.position.Tray)
	if err != nil {
		return false, err
	}
	if art == nil || loc == nil {
		return false, fmt.Errorf("%w: existencia de %q en %s", domain.ErrNotFound, st.article, st.position.Label())
	}
	found, err := repos.Warehouses.GetByArticleAndLocation(ctx, art.ID, loc.ID)
	if err != nil || found != nil {
		return false, err
	}
	w := &entity.Warehouse{Quantity: st.quantity, Article: art, Location: loc}
	w.Stamp(s.clock.Now())
	return true, repos.Warehouses.Create(ctx, w)
}
