package dto

// BarcodeMappingRequest entrada para crear o modificar un mapeo EAN.
type BarcodeMappingRequest struct {
	EAN         string `json:"ean"`
	Description string `json:"description"`
}

// BarcodeMappingResponse salida de un mapeo EAN.
type BarcodeMappingResponse struct {
	BaseResponse
	EAN         string `json:"ean"`
	Description string `json:"description"`
}

// ScanRequest código leído por el escáner.
type ScanRequest struct {
	BarcodeNumber string `json:"barcodeNumber"`
}
