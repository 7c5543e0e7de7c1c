package repository

import (
	"context"
	"time"
	"workhive-backend/internal/model"

	"gorm.io/gorm"
)

type OtpRepository interface {
	Create(ctx context.Context, code *model.OtpCode) error
	InvalidateActive(ctx context.Context, email, purpose string) error
	FindLatestActive(ctx context.Context, email, code, purpose string, now time.Time) (*model.OtpCode, error)
	MarkUsed(ctx context.Context, id uint) (bool, error)
}

type otpRepoImpl struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) OtpRepository {
	return &otpRepoImpl{
		db: db,
	}
}

func (r *otpRepoImpl) Create(ctx context.Context, code *model.OtpCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// InvalidateActive marks every unused code for (email, purpose) as used, so a
// freshly issued code supersedes all earlier ones.
func (r *otpRepoImpl) InvalidateActive(ctx context.Context, email, purpose string) error {
	return r.db.WithContext(ctx).Model(&model.OtpCode{}).
		Where("email = ? AND purpose = ? AND used = ?", email, purpose, false).
		Update("used", true).Error
}

func (r *otpRepoImpl) FindLatestActive(ctx context.Context, email, code, purpose string, now time.Time) (*model.OtpCode, error) {
	var row model.OtpCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND code = ? AND purpose = ? AND used = ? AND expires_at >= ?",
			email, code, purpose, false, now).
		Order("created_at DESC").
		First(&row).Error

	if err != nil {
		return nil, err
	}

	return &row, nil
}

// MarkUsed flips used to true only if the row is still unused. The affected
// row count tells the caller whether this attempt actually spent the code,
// which makes concurrent verifications of the same code settle to one winner.
func (r *otpRepoImpl) MarkUsed(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.OtpCode{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
