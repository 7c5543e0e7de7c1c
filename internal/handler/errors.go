package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"workhive-backend/internal/client"
	"workhive-backend/internal/dto"
	"workhive-backend/internal/service"

	"github.com/labstack/echo/v4"
)

// writeError maps service errors to JSON responses. Gateway failures pass
// the gateway's own status through so the integration layer can diagnose
// them; everything else collapses to 400/409/500.
func writeError(c echo.Context, err error) error {
	var gatewayErr *client.GatewayError
	if errors.As(err, &gatewayErr) {
		var details interface{}
		if json.Valid([]byte(gatewayErr.Body)) {
			details = json.RawMessage(gatewayErr.Body)
		} else {
			details = gatewayErr.Body
		}
		return c.JSON(gatewayErr.StatusCode, &dto.ErrorResponse{
			Error:   "payment gateway rejected the order",
			Details: details,
		})
	}

	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrInvalidAmount):
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidOrExpired):
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: service.ErrInvalidOrExpired.Error()})
	case errors.Is(err, service.ErrDuplicateBooking):
		return c.JSON(http.StatusConflict, &dto.ErrorResponse{Error: service.ErrDuplicateBooking.Error()})
	case errors.Is(err, service.ErrConfiguration):
		return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{Error: service.ErrConfiguration.Error()})
	case errors.Is(err, service.ErrDeliveryFailure):
		return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{Error: service.ErrDeliveryFailure.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{Error: "internal server error"})
	}
}
