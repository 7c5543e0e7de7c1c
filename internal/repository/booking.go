package repository

import (
	"context"
	"workhive-backend/internal/model"

	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByGatewayOrderID(ctx context.Context, orderID string) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
}

type bookingRepoImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepoImpl{
		db: db,
	}
}

func (r *bookingRepoImpl) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepoImpl) FindByGatewayOrderID(ctx context.Context, orderID string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).
		Where("razorpay_order_id = ?", orderID).
		First(&booking).Error

	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepoImpl) List(ctx context.Context) ([]*model.Booking, error) {
	var bookings []*model.Booking
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}
