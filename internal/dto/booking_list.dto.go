package dto

type BookingListDTO struct {
	ID             string  `json:"id"`
	SessionDate    string  `json:"session_date"`
	StartTime      string  `json:"start_time"`
	DurationMin    int     `json:"duration_min"`
	Status         string  `json:"status"`
	Amount         float64 `json:"amount"`
	TherapistName  string  `json:"therapist_name"`
	Specialization string  `json:"specialization"`
	MeetingLink    string  `json:"meeting_link,omitempty"`

	// Status-dependent affordances for the rendering layer.
	CanCancel bool `json:"can_cancel"`
	CanRebook bool `json:"can_rebook"`
}
