package service

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"workhive-backend/internal/client"
	"workhive-backend/internal/config"
	"workhive-backend/internal/dto"

	"github.com/shopspring/decimal"
)

// Razorpay rejects receipts longer than 40 characters.
const maxReceiptLen = 40

const defaultCurrency = "INR"

type PaymentService interface {
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
}

type paymentServiceImpl struct {
	gateway   client.RazorpayClient
	keyID     string
	keySecret string
}

func NewPaymentService(gateway client.RazorpayClient, razorpayCfg *config.Razorpay) PaymentService {
	return &paymentServiceImpl{
		gateway:   gateway,
		keyID:     razorpayCfg.KeyID,
		keySecret: razorpayCfg.KeySecret,
	}
}

func (s *paymentServiceImpl) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive number of %s", ErrInvalidAmount, defaultCurrency)
	}
	if s.keyID == "" || s.keySecret == "" {
		return nil, ErrConfiguration
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	result, err := s.gateway.CreateOrder(ctx, &client.CreateOrderRequest{
		Amount:   toMinorUnits(req.Amount),
		Currency: currency,
		Receipt:  deriveReceipt(req.Receipt, time.Now()),
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}

	return &dto.CreateOrderResponse{
		OrderID:  result.OrderID,
		Amount:   result.Amount,
		Currency: result.Currency,
		KeyID:    s.keyID,
	}, nil
}

// toMinorUnits converts a major-unit amount (rupees) to minor units (paise),
// rounding to the nearest integer.
func toMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// deriveReceipt builds a receipt under the gateway's 40-character limit.
// The base-36 timestamp keeps receipts for the same seed distinct across
// checkout attempts; the seed tail keeps them correlatable to the booking.
func deriveReceipt(seed string, now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	if seed == "" {
		return truncate("order_"+ts, maxReceiptLen)
	}
	if len(seed) > 8 {
		seed = seed[len(seed)-8:]
	}
	return truncate(seed+"_"+ts, maxReceiptLen)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
