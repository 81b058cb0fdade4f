// Package booking contains the pure availability and rating logic shared by
// the HTTP handlers, the reservation lifecycle and the SQL repositories.
// Keeping the predicates here ensures the availability engine and the
// detail-view computation cannot drift apart.
package booking

import (
	"time"

	"github.com/dinespot/table-reservation/internal/model"
)

// ConflictError is returned when a table already carries an active booking.
// NextAvailable holds the stored reservation instant so callers can hint
// when the table frees up again.
type ConflictError struct {
	NextAvailable time.Time
}

func (e *ConflictError) Error() string { return "table is already reserved" }

// IsActiveBooking reports whether a stored reservation date still blocks its
// table at the reference time. There is no expiry sweep; a date in the past
// simply stops blocking. This is the single shared expiry predicate.
func IsActiveBooking(reservationDate *time.Time, now time.Time) bool {
	return reservationDate != nil && reservationDate.After(now)
}

// TableAvailable reports whether the table can accept a booking at the
// reference time.
func TableAvailable(t *model.Table, now time.Time) bool {
	return !t.IsReserved || !IsActiveBooking(t.ReservationDate, now)
}

// CheckAndReserve marks the table reserved for the requested instant. If the
// table currently carries an active booking it returns a *ConflictError
// carrying the existing reservation date and leaves the table untouched.
// Two future bookings on the same table are mutually exclusive regardless of
// how far apart their instants are; the engine tracks a single instant per
// table, not durations.
func CheckAndReserve(t *model.Table, requested, now time.Time) error {
	if t.IsReserved && IsActiveBooking(t.ReservationDate, now) {
		return &ConflictError{NextAvailable: *t.ReservationDate}
	}
	d := requested
	t.IsReserved = true
	t.ReservationDate = &d
	return nil
}

// Release frees the table. Releasing an already-free table is a no-op so a
// retried cancellation never errors.
func Release(t *model.Table) {
	t.IsReserved = false
	t.ReservationDate = nil
}

// FindTable resolves a table by number within a restaurant's table list.
// It returns nil when no such table exists.
func FindTable(tables []model.Table, number int) *model.Table {
	for i := range tables {
		if tables[i].TableNumber == number {
			return &tables[i]
		}
	}
	return nil
}

// AvailableTables returns the tables free to book at the given instant,
// applying the same lazy-expiry predicate as CheckAndReserve.
func AvailableTables(tables []model.Table, at time.Time) []model.Table {
	out := make([]model.Table, 0, len(tables))
	for _, t := range tables {
		if TableAvailable(&t, at) {
			out = append(out, t)
		}
	}
	return out
}
