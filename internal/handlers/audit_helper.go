package handlers

import "github.com/mindspace-care/mindspace-api/internal/audit"

func auditSignup(userID *string, role string) audit.Event {
	return audit.Event{
		UserID:   userID,
		Action:   "user_signed_up",
		Entity:   "user",
		EntityID: userID,
		Metadata: map[string]any{"role": role},
	}
}

func auditApproval(adminID *string, therapistID string, action string) audit.Event {
	return audit.Event{
		UserID:   adminID,
		Action:   action,
		Entity:   "therapist",
		EntityID: &therapistID,
	}
}
