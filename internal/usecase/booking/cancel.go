package booking

import (
	"context"

	"github.com/mindspace-care/mindspace-api/internal/audit"
	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/httperr"
	"github.com/mindspace-care/mindspace-api/internal/models"
	"github.com/mindspace-care/mindspace-api/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft-cancels a booking. Only the owning user or an admin may
// cancel; the row is never deleted.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID string,
	userRole string,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.UserID != userID && userRole != models.RoleAdmin {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	now := timezone.Now()
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
