package booking

import (
	"context"

	"github.com/mindspace-care/mindspace-api/internal/models"
)

type Repository interface {
	// -------- Therapist --------
	GetTherapistByID(
		ctx context.Context,
		id string,
	) (*models.Therapist, error)

	ListApprovedTherapists(
		ctx context.Context,
		search string,
	) ([]models.Therapist, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	HasConfirmedBookingOnDate(
		ctx context.Context,
		userID string,
		sessionDate string,
	) (bool, error)

	// -------- Booking (state change) --------
	GetBookingByID(
		ctx context.Context,
		bookingID string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Listings --------
	ListBookingsForUser(
		ctx context.Context,
		userID string,
	) ([]models.Booking, error)

	ListTakenSlots(
		ctx context.Context,
		therapistID string,
		sessionDate string,
	) ([]string, error)
}
