package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Therapist
// --------------------------------------------------

func (r *BookingGormRepository) GetTherapistByID(
	ctx context.Context,
	id string,
) (*models.Therapist, error) {

	var th models.Therapist
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&th).Error; err != nil {
		return nil, err
	}
	return &th, nil
}

func (r *BookingGormRepository) ListApprovedTherapists(
	ctx context.Context,
	search string,
) ([]models.Therapist, error) {

	q := r.db.WithContext(ctx).
		Where("approval_status = ? AND active = ?", string(domain.ApprovalApproved), true)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR specialization ILIKE ?", like, like)
	}

	var out []models.Therapist
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// HasConfirmedBookingOnDate is the optimistic pre-check. It improves
// the error a user sees but does not exclude a concurrent writer; the
// partial unique index does.
func (r *BookingGormRepository) HasConfirmedBookingOnDate(
	ctx context.Context,
	userID string,
	sessionDate string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"user_id = ? AND session_date = ? AND status = ?",
			userID, sessionDate, string(domain.StatusConfirmed),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", bookingID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID string,
) ([]models.Booking, error) {

	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Therapist").
		Where("user_id = ?", userID).
		Order("session_date ASC, start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

func (r *BookingGormRepository) ListTakenSlots(
	ctx context.Context,
	therapistID string,
	sessionDate string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"therapist_id = ? AND session_date = ? AND status = ?",
			therapistID, sessionDate, string(domain.StatusConfirmed),
		).
		Order("start_time ASC").
		Pluck("start_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
