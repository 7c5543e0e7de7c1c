package repository

import (
	"context"
	"workhive-backend/internal/model"

	"gorm.io/gorm"
)

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *model.Enquiry) error
	List(ctx context.Context) ([]*model.Enquiry, error)
}

type enquiryRepoImpl struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) EnquiryRepository {
	return &enquiryRepoImpl{
		db: db,
	}
}

func (r *enquiryRepoImpl) Create(ctx context.Context, enquiry *model.Enquiry) error {
	return r.db.WithContext(ctx).Create(enquiry).Error
}

func (r *enquiryRepoImpl) List(ctx context.Context) ([]*model.Enquiry, error) {
	var enquiries []*model.Enquiry
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&enquiries).Error

	if err != nil {
		return nil, err
	}

	return enquiries, nil
}
