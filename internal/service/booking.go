package service

import (
	"context"
	"fmt"
	"time"
	"workhive-backend/internal/dto"
	"workhive-backend/internal/model"
	"workhive-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingService interface {
	RecordBooking(ctx context.Context, req *dto.BookingRequest) (string, error)
	ListBookings(ctx context.Context) ([]*model.Booking, error)
}

type bookingServiceImpl struct {
	bookingRepo repository.BookingRepository
}

func NewBookingService(bookingRepo repository.BookingRepository) BookingService {
	return &bookingServiceImpl{
		bookingRepo: bookingRepo,
	}
}

func (s *bookingServiceImpl) RecordBooking(ctx context.Context, req *dto.BookingRequest) (string, error) {
	if req.WorkspaceID == "" || req.RazorpayOrderID == "" {
		return "", fmt.Errorf("%w: workspace_id and razorpay_order_id are required", ErrInvalidRequest)
	}
	if !emailPattern.MatchString(req.CustomerEmail) {
		return "", fmt.Errorf("%w: malformed customer email", ErrInvalidRequest)
	}
	if req.Amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}

	if _, err := s.bookingRepo.FindByGatewayOrderID(ctx, req.RazorpayOrderID); err == nil {
		return "", ErrDuplicateBooking
	} else if err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("check existing booking: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now()
	booking := &model.Booking{
		ID:              uuid.NewString(),
		WorkspaceID:     req.WorkspaceID,
		WorkspaceName:   req.WorkspaceName,
		ServiceName:     req.ServiceName,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		Amount:          req.Amount,
		Currency:        currency,
		RazorpayOrderID: req.RazorpayOrderID,
		Status:          "CONFIRMED",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return "", fmt.Errorf("store booking: %w", err)
	}

	return booking.ID, nil
}

func (s *bookingServiceImpl) ListBookings(ctx context.Context) ([]*model.Booking, error) {
	return s.bookingRepo.List(ctx)
}
