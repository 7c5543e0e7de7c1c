package handler

import (
	"net/http"
	"workhive-backend/internal/dto"
	"workhive-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type OtpHandler struct {
	otpService service.OtpService
}

func NewOtpHandler(otpService service.OtpService) *OtpHandler {
	return &OtpHandler{
		otpService: otpService,
	}
}

func (h *OtpHandler) SendOtp(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SendOtpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "invalid request body"})
	}

	if err := h.otpService.IssueCode(ctx, req.Email, req.Type); err != nil {
		return writeError(c, err)
	}

	// The code itself travels only by email.
	return c.JSON(http.StatusOK, &dto.OtpResponse{
		Success: true,
		Message: "OTP sent successfully",
	})
}

func (h *OtpHandler) VerifyOtp(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VerifyOtpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "invalid request body"})
	}

	if err := h.otpService.VerifyCode(ctx, req.Email, req.Code, req.Type); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, &dto.OtpResponse{
		Success: true,
		Message: "OTP verified successfully",
	})
}
