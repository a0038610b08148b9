package booking

import "github.com/mindspace-care/mindspace-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Therapist Approval
// ===============================

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ===============================
// Validations
// ===============================

// CanCancel defines whether a booking may transition to cancelled.
func CanCancel(current Status) error {
	if current != StatusConfirmed && current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete defines whether a booking may transition to completed.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus is the status a freshly reserved slot carries.
func InitialStatus() Status {
	return StatusConfirmed
}
