package booking

import (
	"context"

	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/dto"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(
	repo domain.Repository,
) *ListUserBookings {
	return &ListUserBookings{
		repo: repo,
	}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID string,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		status := domain.Status(b.Status)

		item := dto.BookingListDTO{
			ID:             b.ID,
			SessionDate:    b.SessionDate,
			StartTime:      b.StartTime,
			DurationMin:    b.DurationMin,
			Status:         b.Status,
			Amount:         b.Amount,
			TherapistName:  b.Therapist.Name,
			Specialization: b.Therapist.Specialization,
			CanCancel:      domain.CanCancel(status) == nil,
			CanRebook:      status == domain.StatusCancelled,
		}

		// The meeting link only matters for sessions still happening.
		if status == domain.StatusConfirmed {
			item.MeetingLink = b.MeetingLink
		}

		out = append(out, item)
	}

	return out, nil
}
