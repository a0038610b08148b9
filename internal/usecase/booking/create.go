package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/mindspace-care/mindspace-api/internal/audit"
	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/httperr"
	"github.com/mindspace-care/mindspace-api/internal/models"
	"github.com/mindspace-care/mindspace-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID      string
	TherapistID string

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Required fields — nothing touches the store
	//    until these pass
	// --------------------------------------------------
	if in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_date_or_time")
	}

	// --------------------------------------------------
	// 2. Slot grid and booking window
	// --------------------------------------------------
	if !domain.IsValidSlot(in.Time) {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	if err := domain.ValidateSessionDate(in.Date, timezone.Now()); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Therapist must be approved and active
	// --------------------------------------------------
	th, err := uc.repo.GetTherapistByID(ctx, in.TherapistID)
	if err != nil {
		return nil, httperr.ErrBusiness("therapist_not_found")
	}
	if th.ApprovalStatus != string(domain.ApprovalApproved) || !th.Active {
		return nil, httperr.ErrBusiness("therapist_not_available")
	}

	// --------------------------------------------------
	// 4. Optimistic conflict pre-check. A concurrent writer
	//    can still slip past it; the unique index has the
	//    final word.
	// --------------------------------------------------
	exists, err := uc.repo.HasConfirmedBookingOnDate(ctx, in.UserID, in.Date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("booking_conflict")
	}

	// --------------------------------------------------
	// 5. Insert
	// --------------------------------------------------
	b := &models.Booking{
		UserID:      in.UserID,
		TherapistID: th.ID,
		SessionDate: in.Date,
		StartTime:   in.Time,
		DurationMin: domain.SessionDurationMin,
		Amount:      domain.SessionFee,
		Status:      string(domain.InitialStatus()),
		MeetingLink: "https://meet.mindspace.care/" + uuid.NewString(),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsDuplicateKey(err) {
			// Lost the race after a clean pre-check.
			uc.audit.Dispatch(audit.Event{
				UserID: &in.UserID,
				Action: "booking_conflict",
				Entity: "booking",
				Metadata: map[string]any{
					"session_date": in.Date,
					"start_time":   in.Time,
				},
			})
			return nil, httperr.ErrBusiness("booking_conflict")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 6. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
