package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/order"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/config"
)

var _ order.Mailer = (*GomailSender)(nil)

// dialer abstrae gomail.Dialer para poder sustituirlo en tests.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// GomailSender envía correos por SMTP con gomail.
type GomailSender struct {
	from   string
	dialer dialer
}

// NewGomailSender construye el sender desde la configuración SMTP.
func NewGomailSender(cfg config.MailConfig) *GomailSender {
	return &GomailSender{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send arma el mensaje con sus adjuntos y lo entrega. gomail no acepta contexto;
// solo se comprueba la cancelación antes de conectar.
func (s *GomailSender) Send(ctx context.Context, msg order.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(s.build(msg)); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	return nil
}

func (s *GomailSender) build(msg order.Message) *gomail.Message {
	m := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	for _, path := range msg.Attachments {
		m.Attach(path)
	}
	return m
}
