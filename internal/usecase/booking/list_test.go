package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/models"
)

func TestListUserBookings_Affordances(t *testing.T) {
	repo := &mockRepo{userBookings: []models.Booking{
		{
			ID: "b-1", Status: string(domain.StatusConfirmed),
			SessionDate: "2026-04-01", StartTime: "10:00",
			MeetingLink: "https://meet.mindspace.care/x",
			Therapist:   models.Therapist{Name: "Dr. Meera Sharma", Specialization: "CBT"},
		},
		{
			ID: "b-2", Status: string(domain.StatusCancelled),
			SessionDate: "2026-04-02", StartTime: "11:00",
			MeetingLink: "https://meet.mindspace.care/y",
		},
		{
			ID: "b-3", Status: string(domain.StatusCompleted),
			SessionDate: "2026-03-01", StartTime: "09:00",
		},
	}}

	uc := NewListUserBookings(repo)

	out, err := uc.Execute(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, out, 3)

	confirmed, cancelled, completed := out[0], out[1], out[2]

	assert.True(t, confirmed.CanCancel)
	assert.False(t, confirmed.CanRebook)
	assert.Equal(t, "Dr. Meera Sharma", confirmed.TherapistName)
	assert.NotEmpty(t, confirmed.MeetingLink)

	// A cancelled booking loses the cancel action and only offers
	// rebooking; its stale meeting link is withheld.
	assert.False(t, cancelled.CanCancel)
	assert.True(t, cancelled.CanRebook)
	assert.Empty(t, cancelled.MeetingLink)

	assert.False(t, completed.CanCancel)
	assert.False(t, completed.CanRebook)
}

func TestListTherapists_EmptyIsNotError(t *testing.T) {
	uc := NewListTherapists(&mockRepo{})

	out, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestGetAvailability_FiltersTaken(t *testing.T) {
	repo := &mockRepo{
		therapist: approvedTherapist(),
		taken:     []string{"10:00", "15:00"},
	}
	uc := NewGetAvailability(repo)

	free, err := uc.Execute(context.Background(), "th-1", dateFromToday(1))
	require.NoError(t, err)

	assert.Len(t, free, 9)
	assert.NotContains(t, free, "10:00")
	assert.NotContains(t, free, "15:00")
}

func TestGetAvailability_UnapprovedHasNoSlots(t *testing.T) {
	th := approvedTherapist()
	th.Active = false

	uc := NewGetAvailability(&mockRepo{therapist: th})

	free, err := uc.Execute(context.Background(), "th-1", dateFromToday(1))
	require.NoError(t, err)
	assert.Empty(t, free)
}
