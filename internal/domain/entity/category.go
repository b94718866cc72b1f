package entity

// Category categoría de artículos. Clave natural: Description.
type Category struct {
	Base
	Description string
}
