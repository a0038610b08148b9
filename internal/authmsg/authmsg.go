// Package authmsg maps internal failure codes to the user-facing texts
// shown by clients. Codes without an entry pass through verbatim so an
// unexpected backend message still reaches the user instead of a blank.
package authmsg

var messages = map[string]string{
	"invalid_credentials":  "Invalid email or password",
	"email_not_confirmed":  "Please confirm your email address first",
	"rate_limited":         "Too many attempts. Please wait a moment and try again",
	"duplicate_email":      "An account with this email already exists",
	"pending_approval":     "Your therapist application is still awaiting approval",
	"rejected_application": "Your therapist application was not approved",
	"booking_conflict":     "You already have a confirmed session on this date",
	"date_in_past":         "Please choose a date from today onwards",
	"date_too_far":         "Sessions can be booked at most 3 months ahead",
	"invalid_slot":         "Please pick one of the available time slots",
	"invalid_state":        "This booking can no longer be changed",
	"internal_error":       "Something went wrong. Please try again",
}

// Lookup resolves a failure code to its display message, falling back
// to the raw input.
func Lookup(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return code
}
