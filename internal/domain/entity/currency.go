package entity

// Currency moneda. Clave natural: (CurrencyCode, Country).
type Currency struct {
	Base
	CurrencyCode string
	Country      string
}
