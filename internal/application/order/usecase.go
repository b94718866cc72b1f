package order

import (
	"context"
	"fmt"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

// Subject asunto fijo del correo de pedido.
const Subject = "Artikelbestellung"

const bodyTemplate = "Sehr geehrte Damen und Herren\n\n" +
	"Im Anhang finden Sie unsere Bestellung für jeweils 100 Stk.\n\n" +
	"Vielen Dank und freundliche Grüsse\n%s"

// Config parámetros del pedido.
type Config struct {
	QuantityLimit int
	CustomerName  string
	CustomerEmail string
}

// Result lo que se envió.
type Result struct {
	Lines       []Line
	Attachments []string
}

// UseCase arma el pedido de artículos con poco stock y lo envía por correo.
type UseCase struct {
	articles repository.ArticleRepository
	writers  []DocumentWriter
	mailer   Mailer
	cfg      Config
	log      *logger.Logger
	observer Observer
}

// NewUseCase construye el caso de uso. Se necesita al menos un writer; observer puede ser nil.
func NewUseCase(articles repository.ArticleRepository, mailer Mailer, cfg Config, log *logger.Logger, observer Observer, writers ...DocumentWriter) *UseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	return &UseCase{
		articles: articles,
		writers:  writers,
		mailer:   mailer,
		cfg:      cfg,
		log:      log.Component("order"),
		observer: observer,
	}
}

// PrepareOrder devuelve los artículos con alguna existencia <= QuantityLimit, ordenados por id.
func (uc *UseCase) PrepareOrder(ctx context.Context) ([]Line, error) {
	list, err := uc.articles.ListLowStock(ctx, uc.cfg.QuantityLimit)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: No Articles found to order!", domain.ErrNoArticlesForOrder)
	}
	lines := make([]Line, 0, len(list))
	for _, a := range list {
		lines = append(lines, Line{ArticleID: a.ID, Description: a.Description})
	}
	return lines, nil
}

// Body cuerpo del correo firmado con el nombre del cliente.
func (uc *UseCase) Body() string {
	return fmt.Sprintf(bodyTemplate, uc.cfg.CustomerName)
}

// SendOrder arma el pedido, genera los adjuntos y envía el correo.
func (uc *UseCase) SendOrder(ctx context.Context) (*Result, error) {
	res, err := uc.sendOrder(ctx)
	lines := 0
	if res != nil {
		lines = len(res.Lines)
	}
	uc.observer.ObserveOrderMail(lines, err)
	return res, err
}

func (uc *UseCase) sendOrder(ctx context.Context) (*Result, error) {
	lines, err := uc.PrepareOrder(ctx)
	if err != nil {
		return nil, err
	}
	if uc.cfg.CustomerEmail == "" {
		return nil, fmt.Errorf("%w: falta el correo del cliente", domain.ErrInvalidInput)
	}

	res := &Result{Lines: lines}
	for _, w := range uc.writers {
		path, err := w.Write(ctx, lines)
		if err != nil {
			return nil, fmt.Errorf("write order document: %w", err)
		}
		res.Attachments = append(res.Attachments, path)
	}

	msg := Message{
		To:          uc.cfg.CustomerEmail,
		Subject:     Subject,
		Body:        uc.Body(),
		Attachments: res.Attachments,
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("send order mail: %w", err)
	}
	uc.log.Info().
		Int("articles", len(lines)).
		Str("to", msg.To).
		Strs("attachments", res.Attachments).
		Msg("pedido enviado")
	return res, nil
}
