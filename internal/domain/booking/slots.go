package booking

import (
	"fmt"
	"time"

	"github.com/mindspace-care/mindspace-api/internal/httperr"
)

// ===============================
// Session Slots
// ===============================

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	SessionDurationMin = 60
	SessionFee         = 500.0

	// Hourly grid, both ends bookable.
	FirstSlotHour = 9
	LastSlotHour  = 19

	// How far ahead a session can be reserved.
	BookingWindowMonths = 3
)

// SlotGrid returns the bookable start times for any given day.
func SlotGrid() []string {
	slots := make([]string, 0, LastSlotHour-FirstSlotHour+1)
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// IsValidSlot reports whether start is one of the grid times.
func IsValidSlot(start string) bool {
	t, err := time.Parse(TimeLayout, start)
	if err != nil {
		return false
	}
	return t.Minute() == 0 && t.Hour() >= FirstSlotHour && t.Hour() <= LastSlotHour
}

// ValidateSessionDate checks the requested calendar date against the
// booking window [today, today+3 months]. now provides "today" so the
// rule stays testable.
func ValidateSessionDate(date string, now time.Time) error {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return httperr.ErrBusiness("date_in_past")
	}

	if d.After(today.AddDate(0, BookingWindowMonths, 0)) {
		return httperr.ErrBusiness("date_too_far")
	}

	return nil
}

// FreeSlots filters the grid against start times already taken that day.
func FreeSlots(taken []string) []string {
	used := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		used[t] = struct{}{}
	}

	var free []string
	for _, s := range SlotGrid() {
		if _, ok := used[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}
