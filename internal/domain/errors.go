package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrAlreadyExists      = errors.New("el recurso ya existe")
	ErrInvalidFormat      = errors.New("formato inválido")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCSV         = errors.New("archivo CSV inválido")
	ErrNoArticlesForOrder = errors.New("no hay artículos para pedir")
)
