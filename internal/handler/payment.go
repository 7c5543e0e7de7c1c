package handler

import (
	"net/http"
	"workhive-backend/internal/dto"
	"workhive-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "invalid request body"})
	}

	resp, err := h.paymentService.CreateOrder(ctx, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
