package repository

import (
	"context"
	"testing"
	"workhive-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingUniqueGatewayOrderID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBookingRepository(db)

	booking := &model.Booking{
		ID: "b-1", WorkspaceID: "ws-42", CustomerEmail: "user@example.com",
		Amount: 150000, Currency: "INR", RazorpayOrderID: "order_Nxy123", Status: "CONFIRMED",
	}
	require.NoError(t, repo.Create(ctx, booking))

	dup := &model.Booking{
		ID: "b-2", WorkspaceID: "ws-42", CustomerEmail: "user@example.com",
		Amount: 150000, Currency: "INR", RazorpayOrderID: "order_Nxy123", Status: "CONFIRMED",
	}
	assert.Error(t, repo.Create(ctx, dup))

	found, err := repo.FindByGatewayOrderID(ctx, "order_Nxy123")
	require.NoError(t, err)
	assert.Equal(t, "b-1", found.ID)
}

func TestBookingListNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBookingRepository(db)

	require.NoError(t, repo.Create(ctx, &model.Booking{
		ID: "b-1", WorkspaceID: "ws-1", CustomerEmail: "a@example.com",
		Amount: 100, Currency: "INR", RazorpayOrderID: "order_1", Status: "CONFIRMED",
	}))
	require.NoError(t, repo.Create(ctx, &model.Booking{
		ID: "b-2", WorkspaceID: "ws-2", CustomerEmail: "b@example.com",
		Amount: 200, Currency: "INR", RazorpayOrderID: "order_2", Status: "CONFIRMED",
	}))

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}
