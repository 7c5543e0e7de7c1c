package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"time"
	"workhive-backend/internal/client"
	"workhive-backend/internal/model"
	"workhive-backend/internal/repository"

	"gorm.io/gorm"
)

const otpValidity = 10 * time.Minute

// Requires a dot in the domain part, so "user@localhost" is rejected.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type OtpService interface {
	IssueCode(ctx context.Context, email, purpose string) error
	VerifyCode(ctx context.Context, email, code, purpose string) error
}

type otpServiceImpl struct {
	otpRepo repository.OtpRepository
	mailer  client.MailSender
}

func NewOtpService(otpRepo repository.OtpRepository, mailer client.MailSender) OtpService {
	return &otpServiceImpl{
		otpRepo: otpRepo,
		mailer:  mailer,
	}
}

func (s *otpServiceImpl) IssueCode(ctx context.Context, email, purpose string) error {
	if email == "" || purpose == "" {
		return fmt.Errorf("%w: email and type are required", ErrInvalidRequest)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: malformed email address", ErrInvalidRequest)
	}
	if purpose != model.OtpPurposeVerification && purpose != model.OtpPurposePasswordReset {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRequest, purpose)
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate otp code: %w", err)
	}

	// Best effort: a concurrent issuance may leave two valid codes for a
	// short window, which verification tolerates (exact match required).
	if err := s.otpRepo.InvalidateActive(ctx, email, purpose); err != nil {
		return fmt.Errorf("invalidate previous codes: %w", err)
	}

	now := time.Now()
	row := &model.OtpCode{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		Used:      false,
		ExpiresAt: now.Add(otpValidity),
		CreatedAt: now,
	}
	if err := s.otpRepo.Create(ctx, row); err != nil {
		return fmt.Errorf("store otp code: %w", err)
	}

	subject, body := composeOtpMail(purpose, code)
	if err := s.mailer.Send(email, subject, body); err != nil {
		// The row stays valid; the caller may retry delivery by
		// requesting a fresh code.
		return fmt.Errorf("%w: %v", ErrDeliveryFailure, err)
	}

	return nil
}

func (s *otpServiceImpl) VerifyCode(ctx context.Context, email, code, purpose string) error {
	if email == "" || code == "" || purpose == "" {
		return fmt.Errorf("%w: email, code and type are required", ErrInvalidRequest)
	}

	row, err := s.otpRepo.FindLatestActive(ctx, email, code, purpose, time.Now())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrInvalidOrExpired
		}
		return fmt.Errorf("lookup otp code: %w", err)
	}

	spent, err := s.otpRepo.MarkUsed(ctx, row.ID)
	if err != nil {
		return fmt.Errorf("mark otp code used: %w", err)
	}
	if !spent {
		// Another verification won the race for this code.
		return ErrInvalidOrExpired
	}

	return nil
}

// generateCode draws uniformly from [100000, 999999] so the code is always
// six digits with no leading zero.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

func composeOtpMail(purpose, code string) (subject, body string) {
	if purpose == model.OtpPurposePasswordReset {
		subject = "Reset your Workhive password"
		body = fmt.Sprintf(
			"<p>We received a request to reset your password.</p>"+
				"<p>Your one-time code is <b>%s</b>. It expires in 10 minutes.</p>"+
				"<p>If you did not request this, you can ignore this email.</p>",
			code)
		return subject, body
	}

	subject = "Verify your email for Workhive"
	body = fmt.Sprintf(
		"<p>Welcome to Workhive!</p>"+
			"<p>Your verification code is <b>%s</b>. It expires in 10 minutes.</p>",
		code)
	return subject, body
}
