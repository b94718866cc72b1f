package postgres

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation 23503: la fila referenciada no existe.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

func duplicate(what string) error {
	return fmt.Errorf("%w: %s already exists in database!", domain.ErrAlreadyExists, what)
}

func missing(what string, id int64) error {
	return fmt.Errorf("%w: %s %d", domain.ErrNotFound, what, id)
}

// isCheckViolation 23514: un CHECK (amount > 0, quantity > 0) rechazó la fila.
func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514"
	}
	return false
}

// writeErr traduce errores de escritura a errores de dominio.
func writeErr(what, op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return duplicate(what)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: referenced entity of %s does not exist", domain.ErrNotFound, what)
	case isCheckViolation(err):
		return fmt.Errorf("%w: %s violates a value constraint", domain.ErrInvalidFormat, what)
	}
	return fmt.Errorf("%s %s: %w", op, strings.ToLower(what), err)
}

// stamps marcas de tiempo leídas de columnas TIMESTAMP.
type stamps struct {
	created, modified time.Time
}

func baseDest(b *entity.Base, s *stamps) []any {
	return []any{&b.ID, &b.Version, &s.created, &s.modified}
}

func (s stamps) apply(b *entity.Base) {
	b.CreatedTimestamp = s.created.Format(entity.TimestampLayout)
	b.ModifiedTimestamp = s.modified.Format(entity.TimestampLayout)
}

// parseStamp convierte la marca textual de la entidad. La marca la pone el caso de uso
// con su reloj (Stamp/Touch); vacía es un error.
func parseStamp(ts string) (time.Time, error) {
	if ts == "" {
		return time.Time{}, fmt.Errorf("%w: timestamp vacío", domain.ErrInvalidInput)
	}
	t, err := time.Parse(entity.TimestampLayout, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q", domain.ErrInvalidFormat, ts)
	}
	return t, nil
}

// insertStamps devuelve created y modified listos para INSERT.
func insertStamps(b *entity.Base) (time.Time, time.Time, error) {
	created, err := parseStamp(b.CreatedTimestamp)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	modified, err := parseStamp(b.ModifiedTimestamp)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if b.Version == 0 {
		b.Version = 1
	}
	return created, modified, nil
}
