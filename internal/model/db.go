package model

import "time"

// OTP purposes. Codes are scoped per purpose and never cross-valid.
const (
	OtpPurposeVerification  = "verification"
	OtpPurposePasswordReset = "password_reset"
)

type OtpCode struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"size:255;index:idx_otp_lookup;not null"`
	Code      string    `gorm:"size:6;not null"`
	Purpose   string    `gorm:"size:32;index:idx_otp_lookup;not null"` // verification, password_reset
	Used      bool      `gorm:"not null;default:false"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

type Enquiry struct {
	ID            string `gorm:"primaryKey;size:36;not null"`
	Name          string `gorm:"size:255;not null"`
	Email         string `gorm:"size:255;index;not null"`
	Phone         string `gorm:"size:32"`
	WorkspaceID   string `gorm:"size:64;index"`
	WorkspaceName string `gorm:"size:255"`
	Message       string `gorm:"type:text;not null"`
	Status        string `gorm:"size:32;index;not null"` // NEW, CONTACTED, CLOSED
	CreatedAt     time.Time
}

type Booking struct {
	ID              string `gorm:"primaryKey;size:36;not null"`
	WorkspaceID     string `gorm:"size:64;index;not null"`
	WorkspaceName   string `gorm:"size:255"`
	ServiceName     string `gorm:"size:255"`
	CustomerName    string `gorm:"size:255"`
	CustomerEmail   string `gorm:"size:255;index;not null"`
	Amount          int64  `gorm:"not null"` // minor currency units
	Currency        string `gorm:"size:8;not null"`
	RazorpayOrderID string `gorm:"size:64;uniqueIndex;not null"`
	Status          string `gorm:"size:32;index;not null"` // CONFIRMED, CANCELLED
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
