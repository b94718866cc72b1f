package dto

// StatusRequest entrada para crear o modificar un estado.
type StatusRequest struct {
	Description string `json:"description"`
}

// StatusResponse salida de un estado.
type StatusResponse struct {
	BaseResponse
	Description string `json:"description"`
}

// CategoryRequest entrada para crear o modificar una categoría.
type CategoryRequest struct {
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	BaseResponse
	Description string `json:"description"`
}

// CurrencyRequest entrada para crear o modificar una moneda.
type CurrencyRequest struct {
	CurrencyCode string `json:"currencyCode"`
	Country      string `json:"country"`
}

// CurrencyResponse salida de una moneda.
type CurrencyResponse struct {
	BaseResponse
	CurrencyCode string `json:"currencyCode"`
	Country      string `json:"country"`
}

// LocationRequest entrada para crear o modificar una ubicación.
type LocationRequest struct {
	Aisle string `json:"aisle"`
	Shelf int    `json:"shelf"`
	Tray  int    `json:"tray"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	BaseResponse
	Aisle string `json:"aisle"`
	Shelf int    `json:"shelf"`
	Tray  int    `json:"tray"`
}
