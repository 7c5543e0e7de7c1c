package handler

import (
	"net/http"
	"workhive-backend/internal/dto"
	"workhive-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

func (h *BookingHandler) RecordBooking(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "invalid request body"})
	}

	id, err := h.bookingService.RecordBooking(ctx, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, &dto.CreatedResponse{ID: id})
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	ctx := c.Request().Context()

	bookings, err := h.bookingService.ListBookings(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, bookings)
}
