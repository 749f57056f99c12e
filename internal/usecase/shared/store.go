package shared

import (
	"context"

	"visit-booking/internal/domain/reservation"
)

// ReservationStore is the record store of reservations. Every call is atomic on
// its own; callers never rely on atomicity across calls.
//
// Lookups that find nothing return an infra.RepositoryError of kind NOT_FOUND,
// inserts that hit the uid unique index return DUPLICATE_KEY and any other
// failure is DB_FAILURE (marked errs.ErrStorage).
type ReservationStore interface {
	// Insert persists res and returns the id assigned by the store.
	Insert(ctx context.Context, res *reservation.Reservation) (int64, error)
	// DeleteByUID removes at most one row and reports how many were removed.
	DeleteByUID(ctx context.Context, uid string) (int64, error)
	FindByUID(ctx context.Context, uid string, activeOnly bool) (*reservation.Reservation, error)
	// FindByAttendee matches exactly and returns rows in insertion order.
	FindByAttendee(ctx context.Context, attendee string) ([]*reservation.Reservation, error)
	// FindBookedDates returns the distinct visit dates inside window, bounds included.
	FindBookedDates(ctx context.Context, window reservation.DateRange) (map[reservation.Date]struct{}, error)
	ListAll(ctx context.Context) ([]*reservation.Reservation, error)
	Close() error
}
