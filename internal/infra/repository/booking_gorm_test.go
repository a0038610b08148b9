package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/models"
)

func newTestRepo(t *testing.T) (*BookingGormRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Therapist{},
		&models.Booking{},
	))

	return NewBookingGormRepository(db), db
}

func seedTherapist(t *testing.T, db *gorm.DB, name, status string, active bool) *models.Therapist {
	t.Helper()

	user := &models.User{
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "x",
		FullName:     name,
		Role:         models.RoleTherapist,
	}
	require.NoError(t, db.Create(user).Error)

	th := &models.Therapist{
		UserID:         user.ID,
		Name:           name,
		Specialization: "Anxiety",
		ApprovalStatus: status,
		Active:         active,
	}
	require.NoError(t, db.Create(th).Error)
	return th
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	u := &models.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     "Test User",
		Role:         models.RoleUser,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestListApprovedTherapists_FiltersStatusAndActive(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	seedTherapist(t, db, "zara", string(domain.ApprovalApproved), true)
	seedTherapist(t, db, "amit", string(domain.ApprovalApproved), true)
	seedTherapist(t, db, "pending", string(domain.ApprovalPending), true)
	seedTherapist(t, db, "retired", string(domain.ApprovalApproved), false)

	out, err := repo.ListApprovedTherapists(ctx, "")
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "amit", out[0].Name, "ordered by name")
	assert.Equal(t, "zara", out[1].Name)
}

func TestGetTherapistByID(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	th := seedTherapist(t, db, "zara", string(domain.ApprovalApproved), true)

	got, err := repo.GetTherapistByID(ctx, th.ID)
	require.NoError(t, err)
	assert.Equal(t, th.Name, got.Name)

	_, err = repo.GetTherapistByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHasConfirmedBookingOnDate(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	th := seedTherapist(t, db, "zara", string(domain.ApprovalApproved), true)
	u := seedUser(t, db, "client@example.com")

	require.NoError(t, repo.CreateBooking(ctx, &models.Booking{
		UserID:      u.ID,
		TherapistID: th.ID,
		SessionDate: "2026-09-15",
		StartTime:   "10:00",
		Status:      string(domain.StatusConfirmed),
	}))

	has, err := repo.HasConfirmedBookingOnDate(ctx, u.ID, "2026-09-15")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.HasConfirmedBookingOnDate(ctx, u.ID, "2026-09-16")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestHasConfirmedBookingOnDate_IgnoresCancelled(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	th := seedTherapist(t, db, "zara", string(domain.ApprovalApproved), true)
	u := seedUser(t, db, "client@example.com")

	require.NoError(t, repo.CreateBooking(ctx, &models.Booking{
		UserID:      u.ID,
		TherapistID: th.ID,
		SessionDate: "2026-09-15",
		StartTime:   "10:00",
		Status:      string(domain.StatusCancelled),
	}))

	has, err := repo.HasConfirmedBookingOnDate(ctx, u.ID, "2026-09-15")
	require.NoError(t, err)
	assert.False(t, has, "a cancelled booking frees the date")
}

func TestListTakenSlots(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	th := seedTherapist(t, db, "zara", string(domain.ApprovalApproved), true)
	u1 := seedUser(t, db, "a@example.com")
	u2 := seedUser(t, db, "b@example.com")

	for _, b := range []*models.Booking{
		{UserID: u1.ID, TherapistID: th.ID, SessionDate: "2026-09-15", StartTime: "14:00", Status: string(domain.StatusConfirmed)},
		{UserID: u2.ID, TherapistID: th.ID, SessionDate: "2026-09-15", StartTime: "09:00", Status: string(domain.StatusConfirmed)},
		{UserID: u2.ID, TherapistID: th.ID, SessionDate: "2026-09-15", StartTime: "11:00", Status: string(domain.StatusCancelled)},
		{UserID: u1.ID, TherapistID: th.ID, SessionDate: "2026-09-16", StartTime: "10:00", Status: string(domain.StatusConfirmed)},
	} {
		require.NoError(t, repo.CreateBooking(ctx, b))
	}

	taken, err := repo.ListTakenSlots(ctx, th.ID, "2026-09-15")
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "14:00"}, taken,
		"confirmed slots only, for that therapist and date, time ordered")
}

func TestListBookingsForUser_OrderAndPreload(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	th := seedTherapist(t, db, "zara", string(domain.ApprovalApproved), true)
	u := seedUser(t, db, "client@example.com")
	other := seedUser(t, db, "other@example.com")

	for _, b := range []*models.Booking{
		{UserID: u.ID, TherapistID: th.ID, SessionDate: "2026-09-20", StartTime: "10:00", Status: string(domain.StatusConfirmed)},
		{UserID: u.ID, TherapistID: th.ID, SessionDate: "2026-09-15", StartTime: "16:00", Status: string(domain.StatusCancelled)},
		{UserID: u.ID, TherapistID: th.ID, SessionDate: "2026-09-15", StartTime: "09:00", Status: string(domain.StatusCancelled)},
		{UserID: other.ID, TherapistID: th.ID, SessionDate: "2026-09-15", StartTime: "12:00", Status: string(domain.StatusConfirmed)},
	} {
		require.NoError(t, repo.CreateBooking(ctx, b))
	}

	out, err := repo.ListBookingsForUser(ctx, u.ID)
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, "09:00", out[0].StartTime)
	assert.Equal(t, "16:00", out[1].StartTime)
	assert.Equal(t, "2026-09-20", out[2].SessionDate)
	assert.Equal(t, "zara", out[0].Therapist.Name, "therapist is preloaded")
}

func TestUpdateBooking_PersistsStateChange(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	th := seedTherapist(t, db, "zara", string(domain.ApprovalApproved), true)
	u := seedUser(t, db, "client@example.com")

	b := &models.Booking{
		UserID:      u.ID,
		TherapistID: th.ID,
		SessionDate: "2026-09-15",
		StartTime:   "10:00",
		Status:      string(domain.StatusConfirmed),
	}
	require.NoError(t, repo.CreateBooking(ctx, b))

	require.NoError(t, domain.Cancel(b, time.Now()))
	require.NoError(t, repo.UpdateBooking(ctx, b))

	got, err := repo.GetBookingByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	assert.NotNil(t, got.CancelledAt)
}
