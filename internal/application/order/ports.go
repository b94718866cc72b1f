package order

import "context"

// Line una posición del pedido.
type Line struct {
	ArticleID   int64
	Description string
}

// DocumentWriter genera un archivo del pedido y devuelve su ruta.
type DocumentWriter interface {
	Write(ctx context.Context, lines []Line) (string, error)
}

// Message correo saliente con adjuntos (rutas de archivo).
type Message struct {
	To          string
	Subject     string
	Body        string
	Attachments []string
}

// Mailer envía correos.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Observer recibe el resultado de cada envío (métricas).
type Observer interface {
	ObserveOrderMail(lines int, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveOrderMail(int, error) {}
