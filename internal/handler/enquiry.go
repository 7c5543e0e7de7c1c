package handler

import (
	"net/http"
	"workhive-backend/internal/dto"
	"workhive-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type EnquiryHandler struct {
	enquiryService service.EnquiryService
}

func NewEnquiryHandler(enquiryService service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{
		enquiryService: enquiryService,
	}
}

func (h *EnquiryHandler) SubmitEnquiry(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.EnquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "invalid request body"})
	}

	id, err := h.enquiryService.SubmitEnquiry(ctx, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, &dto.CreatedResponse{ID: id})
}

func (h *EnquiryHandler) ListEnquiries(c echo.Context) error {
	ctx := c.Request().Context()

	enquiries, err := h.enquiryService.ListEnquiries(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, enquiries)
}
