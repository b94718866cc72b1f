package entity

import "time"

// TimestampLayout formato de fecha-hora local con el que se guardan las marcas de tiempo.
const TimestampLayout = "2006-01-02 15:04:05"

// Base campos comunes a todas las entidades persistidas.
type Base struct {
	ID                int64
	Version           int64
	CreatedTimestamp  string
	ModifiedTimestamp string
}

// Stamp inicializa versión y marcas de tiempo de una entidad nueva.
func (b *Base) Stamp(now time.Time) {
	ts := now.Format(TimestampLayout)
	b.Version = 1
	b.CreatedTimestamp = ts
	b.ModifiedTimestamp = ts
}

// Touch refresca la marca de modificación.
func (b *Base) Touch(now time.Time) {
	b.ModifiedTimestamp = now.Format(TimestampLayout)
}
