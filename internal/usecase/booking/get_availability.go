package booking

import (
	"context"

	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/httperr"
	"github.com/mindspace-care/mindspace-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the free start times for a therapist on a date
// inside the booking window.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	therapistID string,
	date string,
) ([]string, error) {

	if err := domain.ValidateSessionDate(date, timezone.Now()); err != nil {
		return nil, err
	}

	th, err := uc.repo.GetTherapistByID(ctx, therapistID)
	if err != nil {
		return nil, httperr.ErrBusiness("therapist_not_found")
	}
	if th.ApprovalStatus != string(domain.ApprovalApproved) || !th.Active {
		return []string{}, nil
	}

	taken, err := uc.repo.ListTakenSlots(ctx, th.ID, date)
	if err != nil {
		return nil, err
	}

	free := domain.FreeSlots(taken)
	if free == nil {
		free = []string{}
	}
	return free, nil
}
