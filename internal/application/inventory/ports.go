package inventory

import (
	"context"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error no se persiste nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}

// ImportObserver recibe el resultado de cada importación (métricas).
type ImportObserver interface {
	ObserveImport(res *ImportResult, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveImport(*ImportResult, error) {}
