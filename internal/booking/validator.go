package booking

import (
	"fmt"
	"time"

	"marketplace-client/internal/marketerrors"
	"marketplace-client/internal/models"
)

// Request is a proposed reservation against a venue.
type Request struct {
	DateFrom time.Time
	DateTo   time.Time
	Guests   int
}

// Validate decides whether a proposed reservation is locally admissible for
// the given venue snapshot and its known bookings. A nil return means
// admissible; the caller still submits to the gateway, which is authoritative
// for conflicts introduced by concurrent bookings not yet visible locally.
//
// Validate is a pure function of its inputs and never mutates them.
func Validate(venue models.Venue, existing []models.Booking, proposed Request) error {
	if !proposed.DateTo.After(proposed.DateFrom) {
		return fmt.Errorf("validate: %w - from %s to %s",
			marketerrors.ErrInvalidRange,
			proposed.DateFrom.Format("2006-01-02"), proposed.DateTo.Format("2006-01-02"))
	}
	if proposed.Guests < 1 || proposed.Guests > venue.MaxGuests {
		return fmt.Errorf("validate: %w - got %d, venue allows 1..%d",
			marketerrors.ErrGuestsOutOfBounds, proposed.Guests, venue.MaxGuests)
	}
	for _, b := range existing {
		if Overlaps(proposed.DateFrom, proposed.DateTo, b.DateFrom, b.DateTo) {
			return fmt.Errorf("validate: %w - taken %s to %s",
				marketerrors.ErrDateConflict,
				b.DateFrom.Format("2006-01-02"), b.DateTo.Format("2006-01-02"))
		}
	}
	return nil
}

// Overlaps reports whether the half-open intervals [aFrom, aTo) and
// [bFrom, bTo) intersect. A checkout date equal to another booking's check-in
// date is not an overlap.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && bFrom.Before(aTo)
}
