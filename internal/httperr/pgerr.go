package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres class 23 integrity violations we act on.
const pgUniqueViolation = "23505"

// IsDuplicateKey reports whether err is a unique-constraint rejection
// from Postgres. The partial index on confirmed bookings surfaces
// double-booking races this way, after both writers passed the
// optimistic pre-check.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
