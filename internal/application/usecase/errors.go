package usecase

import (
	"fmt"

	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
)

func notFound(what string, id int64) error {
	return fmt.Errorf("%w: %s does not exist with id: %d", domain.ErrNotFound, what, id)
}

func alreadyExists(what string) error {
	return fmt.Errorf("%w: %s already exists in database!", domain.ErrAlreadyExists, what)
}
