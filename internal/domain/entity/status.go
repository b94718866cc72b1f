package entity

// Status estado de un artículo (CREATED, ACTIVE, ...). Clave natural: Description.
type Status struct {
	Base
	Description string
}
