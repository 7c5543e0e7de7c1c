package service

import (
	"context"
	"testing"
	"workhive-backend/internal/dto"
	"workhive-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeBookingRepo struct {
	rows []*model.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	f.rows = append(f.rows, booking)
	return nil
}

func (f *fakeBookingRepo) FindByGatewayOrderID(_ context.Context, orderID string) (*model.Booking, error) {
	for _, row := range f.rows {
		if row.RazorpayOrderID == orderID {
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookingRepo) List(_ context.Context) ([]*model.Booking, error) {
	return f.rows, nil
}

func validBookingRequest() *dto.BookingRequest {
	return &dto.BookingRequest{
		WorkspaceID:     "ws-42",
		WorkspaceName:   "Indiranagar Hub",
		ServiceName:     "Day Pass",
		CustomerEmail:   "user@example.com",
		Amount:          150000,
		RazorpayOrderID: "order_Nxy123",
	}
}

func TestRecordBooking(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{}
	svc := NewBookingService(repo)

	id, err := svc.RecordBooking(ctx, validBookingRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "CONFIRMED", repo.rows[0].Status)
	assert.Equal(t, "INR", repo.rows[0].Currency, "currency defaults to INR")
}

func TestRecordBookingRejectsDuplicateOrder(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{}
	svc := NewBookingService(repo)

	_, err := svc.RecordBooking(ctx, validBookingRequest())
	require.NoError(t, err)

	_, err = svc.RecordBooking(ctx, validBookingRequest())
	assert.ErrorIs(t, err, ErrDuplicateBooking)
	assert.Len(t, repo.rows, 1)
}

func TestRecordBookingValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(&fakeBookingRepo{})

	missing := validBookingRequest()
	missing.WorkspaceID = ""
	_, err := svc.RecordBooking(ctx, missing)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	badEmail := validBookingRequest()
	badEmail.CustomerEmail = "user@localhost"
	_, err = svc.RecordBooking(ctx, badEmail)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	badAmount := validBookingRequest()
	badAmount.Amount = 0
	_, err = svc.RecordBooking(ctx, badAmount)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
