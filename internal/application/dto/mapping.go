package dto

import "github.com/vinherch/warehouse-zhaw-backend/internal/domain/entity"

func ToStatusResponse(s *entity.Status) *StatusResponse {
	if s == nil {
		return nil
	}
	return &StatusResponse{BaseResponse: NewBaseResponse(s.Base), Description: s.Description}
}

func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{BaseResponse: NewBaseResponse(c.Base), Description: c.Description}
}

func ToCurrencyResponse(c *entity.Currency) *CurrencyResponse {
	if c == nil {
		return nil
	}
	return &CurrencyResponse{
		BaseResponse: NewBaseResponse(c.Base),
		CurrencyCode: c.CurrencyCode,
		Country:      c.Country,
	}
}

func ToLocationResponse(l *entity.Location) *LocationResponse {
	if l == nil {
		return nil
	}
	return &LocationResponse{
		BaseResponse: NewBaseResponse(l.Base),
		Aisle:        l.Aisle,
		Shelf:        l.Shelf,
		Tray:         l.Tray,
	}
}

func ToArticleResponse(a *entity.Article) *ArticleResponse {
	if a == nil {
		return nil
	}
	return &ArticleResponse{
		BaseResponse: NewBaseResponse(a.Base),
		Description:  a.Description,
		Amount:       a.Amount,
		Category:     ToCategoryResponse(a.Category),
		Currency:     ToCurrencyResponse(a.Currency),
		Status:       ToStatusResponse(a.Status),
	}
}

func ToWarehouseResponse(w *entity.Warehouse) *WarehouseResponse {
	if w == nil {
		return nil
	}
	return &WarehouseResponse{
		BaseResponse: NewBaseResponse(w.Base),
		Quantity:     w.Quantity,
		Article:      ToArticleResponse(w.Article),
		Location:     ToLocationResponse(w.Location),
	}
}

func ToBarcodeMappingResponse(m *entity.BarcodeMapping) *BarcodeMappingResponse {
	if m == nil {
		return nil
	}
	return &BarcodeMappingResponse{
		BaseResponse: NewBaseResponse(m.Base),
		EAN:          m.EAN,
		Description:  m.Description,
	}
}
