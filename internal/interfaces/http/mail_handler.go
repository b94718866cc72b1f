package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/dto"
	"github.com/vinherch/warehouse-zhaw-backend/internal/application/order"
)

// OrderSender lo implementa *order.UseCase.
type OrderSender interface {
	SendOrder(ctx context.Context) (*order.Result, error)
}

// MailHandler dispara el pedido de artículos con poco stock.
type MailHandler struct {
	orders OrderSender
}

// NewMailHandler construye el handler.
func NewMailHandler(orders OrderSender) *MailHandler {
	return &MailHandler{orders: orders}
}

// Send godoc
// @Summary      Enviar pedido de artículos con poco stock
// @Tags         mail
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /v1/mail [get]
func (h *MailHandler) Send(c *fiber.Ctx) error {
	res, err := h.orders.SendOrder(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Order sent for %d articles", len(res.Lines))})
}
