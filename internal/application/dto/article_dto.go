package dto

import "github.com/shopspring/decimal"

// ArticleRequest entrada para crear o modificar un artículo.
// Category, Currency y Status se referencian por id.
type ArticleRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	Category    RefRequest      `json:"category"`
	Currency    RefRequest      `json:"currency"`
	Status      RefRequest      `json:"status"`
}

// ArticleResponse salida de un artículo con sus relaciones cargadas.
type ArticleResponse struct {
	BaseResponse
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount" swaggertype:"number"`
	Category    *CategoryResponse `json:"category"`
	Currency    *CurrencyResponse `json:"currency"`
	Status      *StatusResponse   `json:"status"`
}

// WarehouseRequest entrada para crear o modificar una existencia.
type WarehouseRequest struct {
	Quantity int        `json:"quantity"`
	Article  RefRequest `json:"article"`
	Location RefRequest `json:"location"`
}

// WarehouseResponse salida de una existencia.
type WarehouseResponse struct {
	BaseResponse
	Quantity int               `json:"quantity"`
	Article  *ArticleResponse  `json:"article"`
	Location *LocationResponse `json:"location"`
}
