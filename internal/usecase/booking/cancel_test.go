package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/httperr"
	"github.com/mindspace-care/mindspace-api/internal/models"
)

func confirmedBooking() *models.Booking {
	return &models.Booking{
		ID:          "b-1",
		UserID:      "u1",
		TherapistID: "th-1",
		SessionDate: "2026-04-01",
		StartTime:   "10:00",
		Status:      string(domain.StatusConfirmed),
	}
}

func TestCancelBooking_OwnerSoftCancels(t *testing.T) {
	repo := &mockRepo{booking: confirmedBooking()}
	uc := NewCancelBooking(repo, newTestAudit(t))

	b, err := uc.Execute(context.Background(), "u1", models.RoleUser, "b-1")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt, "cancellation timestamp must be set")
	assert.Equal(t, 1, repo.updateCalls, "soft cancel updates, never deletes")
}

func TestCancelBooking_StrangerForbidden(t *testing.T) {
	repo := &mockRepo{booking: confirmedBooking()}
	uc := NewCancelBooking(repo, newTestAudit(t))

	_, err := uc.Execute(context.Background(), "someone-else", models.RoleUser, "b-1")
	assert.True(t, httperr.IsBusiness(err, "not_allowed"))
	assert.Zero(t, repo.updateCalls)
}

func TestCancelBooking_AdminMayCancelAny(t *testing.T) {
	repo := &mockRepo{booking: confirmedBooking()}
	uc := NewCancelBooking(repo, newTestAudit(t))

	b, err := uc.Execute(context.Background(), "admin-1", models.RoleAdmin, "b-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), b.Status)
}

func TestCancelBooking_CompletedCannotCancel(t *testing.T) {
	b := confirmedBooking()
	b.Status = string(domain.StatusCompleted)

	repo := &mockRepo{booking: b}
	uc := NewCancelBooking(repo, newTestAudit(t))

	_, err := uc.Execute(context.Background(), "u1", models.RoleUser, "b-1")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelBooking_NotFound(t *testing.T) {
	repo := &mockRepo{}
	uc := NewCancelBooking(repo, newTestAudit(t))

	_, err := uc.Execute(context.Background(), "u1", models.RoleUser, "missing")
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestCompleteBooking_TherapistOwnSession(t *testing.T) {
	repo := &mockRepo{booking: confirmedBooking(), therapist: approvedTherapist()}
	uc := NewCompleteBooking(repo, newTestAudit(t))

	b, err := uc.Execute(context.Background(), "th-user-1", models.RoleTherapist, "b-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), b.Status)
	require.NotNil(t, b.CompletedAt)
}

func TestCompleteBooking_WrongTherapist(t *testing.T) {
	repo := &mockRepo{booking: confirmedBooking(), therapist: approvedTherapist()}
	uc := NewCompleteBooking(repo, newTestAudit(t))

	_, err := uc.Execute(context.Background(), "another-therapist", models.RoleTherapist, "b-1")
	assert.True(t, httperr.IsBusiness(err, "not_allowed"))
}

func TestCompleteBooking_PlainUserForbidden(t *testing.T) {
	repo := &mockRepo{booking: confirmedBooking(), therapist: approvedTherapist()}
	uc := NewCompleteBooking(repo, newTestAudit(t))

	_, err := uc.Execute(context.Background(), "u1", models.RoleUser, "b-1")
	assert.True(t, httperr.IsBusiness(err, "not_allowed"))
}
