package service

import (
	"context"
	"fmt"
	"html"
	"log"
	"time"
	"workhive-backend/internal/client"
	"workhive-backend/internal/dto"
	"workhive-backend/internal/model"
	"workhive-backend/internal/repository"

	"github.com/google/uuid"
)

type EnquiryService interface {
	SubmitEnquiry(ctx context.Context, req *dto.EnquiryRequest) (string, error)
	ListEnquiries(ctx context.Context) ([]*model.Enquiry, error)
}

type enquiryServiceImpl struct {
	enquiryRepo repository.EnquiryRepository
	mailer      client.MailSender
	salesEmail  string
}

func NewEnquiryService(enquiryRepo repository.EnquiryRepository, mailer client.MailSender, salesEmail string) EnquiryService {
	return &enquiryServiceImpl{
		enquiryRepo: enquiryRepo,
		mailer:      mailer,
		salesEmail:  salesEmail,
	}
}

func (s *enquiryServiceImpl) SubmitEnquiry(ctx context.Context, req *dto.EnquiryRequest) (string, error) {
	if req.Name == "" || req.Message == "" {
		return "", fmt.Errorf("%w: name and message are required", ErrInvalidRequest)
	}
	if !emailPattern.MatchString(req.Email) {
		return "", fmt.Errorf("%w: malformed email address", ErrInvalidRequest)
	}

	enquiry := &model.Enquiry{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		WorkspaceID:   req.WorkspaceID,
		WorkspaceName: req.WorkspaceName,
		Message:       req.Message,
		Status:        "NEW",
		CreatedAt:     time.Now(),
	}
	if err := s.enquiryRepo.Create(ctx, enquiry); err != nil {
		return "", fmt.Errorf("store enquiry: %w", err)
	}

	// The stored row is the source of truth; notification is best effort.
	if s.salesEmail != "" {
		subject, body := composeEnquiryMail(enquiry)
		if err := s.mailer.Send(s.salesEmail, subject, body); err != nil {
			log.Println("enquiry notification mail failed:", err)
		}
	}

	return enquiry.ID, nil
}

func (s *enquiryServiceImpl) ListEnquiries(ctx context.Context) ([]*model.Enquiry, error) {
	return s.enquiryRepo.List(ctx)
}

func composeEnquiryMail(e *model.Enquiry) (subject, body string) {
	subject = fmt.Sprintf("New workspace enquiry from %s", e.Name)
	body = fmt.Sprintf(
		"<p><b>Name:</b> %s</p>"+
			"<p><b>Email:</b> %s</p>"+
			"<p><b>Phone:</b> %s</p>"+
			"<p><b>Workspace:</b> %s (%s)</p>"+
			"<p><b>Message:</b></p><p>%s</p>",
		html.EscapeString(e.Name),
		html.EscapeString(e.Email),
		html.EscapeString(e.Phone),
		html.EscapeString(e.WorkspaceName),
		html.EscapeString(e.WorkspaceID),
		html.EscapeString(e.Message),
	)
	return subject, body
}
