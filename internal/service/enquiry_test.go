package service

import (
	"context"
	"errors"
	"testing"
	"workhive-backend/internal/dto"
	"workhive-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnquiryRepo struct {
	rows []*model.Enquiry
}

func (f *fakeEnquiryRepo) Create(_ context.Context, enquiry *model.Enquiry) error {
	f.rows = append(f.rows, enquiry)
	return nil
}

func (f *fakeEnquiryRepo) List(_ context.Context) ([]*model.Enquiry, error) {
	return f.rows, nil
}

func TestSubmitEnquiryPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEnquiryRepo{}
	mailer := &fakeMailer{}
	svc := NewEnquiryService(repo, mailer, "sales@workhive.in")

	id, err := svc.SubmitEnquiry(ctx, &dto.EnquiryRequest{
		Name:          "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "+91 98765 43210",
		WorkspaceID:   "ws-42",
		WorkspaceName: "Indiranagar Hub",
		Message:       "Do you have meeting rooms for 10 people?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "NEW", repo.rows[0].Status)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "sales@workhive.in", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, "Asha Rao")
}

func TestSubmitEnquiryMailFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEnquiryRepo{}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewEnquiryService(repo, mailer, "sales@workhive.in")

	id, err := svc.SubmitEnquiry(ctx, &dto.EnquiryRequest{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Message: "Pricing for private cabins?",
	})
	require.NoError(t, err, "the stored enquiry is the source of truth")
	assert.NotEmpty(t, id)
	assert.Len(t, repo.rows, 1)
}

func TestSubmitEnquiryValidation(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEnquiryRepo{}
	svc := NewEnquiryService(repo, &fakeMailer{}, "sales@workhive.in")

	_, err := svc.SubmitEnquiry(ctx, &dto.EnquiryRequest{
		Email:   "asha@example.com",
		Message: "no name",
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.SubmitEnquiry(ctx, &dto.EnquiryRequest{
		Name:    "Asha Rao",
		Email:   "not-an-email",
		Message: "hello",
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	assert.Empty(t, repo.rows)
}
