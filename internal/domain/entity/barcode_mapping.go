package entity

// BarcodeMapping asociación EAN → descripción de artículo. Clave natural: (EAN, Description).
type BarcodeMapping struct {
	Base
	EAN         string
	Description string
}
