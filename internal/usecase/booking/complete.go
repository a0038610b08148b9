package booking

import (
	"context"

	"github.com/mindspace-care/mindspace-api/internal/audit"
	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/httperr"
	"github.com/mindspace-care/mindspace-api/internal/models"
	"github.com/mindspace-care/mindspace-api/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks a held session as completed. Therapists complete their
// own sessions; admins may complete any.
func (uc *CompleteBooking) Execute(
	ctx context.Context,
	actorUserID string,
	actorRole string,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if actorRole == models.RoleTherapist {
		th, err := uc.repo.GetTherapistByID(ctx, b.TherapistID)
		if err != nil || th.UserID != actorUserID {
			return nil, httperr.ErrBusiness("not_allowed")
		}
	} else if actorRole != models.RoleAdmin {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	now := timezone.Now()
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorUserID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
