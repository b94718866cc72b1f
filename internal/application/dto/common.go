package dto

import "github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"

// BaseResponse campos comunes de todas las respuestas de recursos.
type BaseResponse struct {
	ID                int64  `json:"id"`
	Version           int64  `json:"version"`
	CreatedTimestamp  string `json:"createdTimestamp"`
	ModifiedTimestamp string `json:"modifiedTimestamp"`
}

// NewBaseResponse copia los campos comunes desde la entidad.
func NewBaseResponse(b entity.Base) BaseResponse {
	return BaseResponse{
		ID:                b.ID,
		Version:           b.Version,
		CreatedTimestamp:  b.CreatedTimestamp,
		ModifiedTimestamp: b.ModifiedTimestamp,
	}
}

// RefRequest referencia a otra entidad por id: {"id": 1}.
type RefRequest struct {
	ID int64 `json:"id"`
}

// MessageResponse mensaje simple de éxito.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
