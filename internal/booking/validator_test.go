package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketplace-client/internal/marketerrors"
	"marketplace-client/internal/models"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

// Tests Validate
func TestValidate(t *testing.T) {
	venue := models.Venue{ID: "venue1", Name: "Seaside Cabin", MaxGuests: 4}

	existing := []models.Booking{
		{ID: "booking1", VenueID: "venue1", DateFrom: date("2024-06-03"), DateTo: date("2024-06-07"), Guests: 2},
	}

	// Table-driven test cases
	tests := []struct {
		name          string
		existing      []models.Booking
		proposed      Request
		expectedError error
	}{
		{
			name:          "no_existing_bookings_full_capacity",
			existing:      nil,
			proposed:      Request{DateFrom: date("2024-06-01"), DateTo: date("2024-06-05"), Guests: 4},
			expectedError: nil,
		},
		{
			name:          "overlapping_range_rejected",
			existing:      existing,
			proposed:      Request{DateFrom: date("2024-06-01"), DateTo: date("2024-06-05"), Guests: 2},
			expectedError: marketerrors.ErrDateConflict,
		},
		{
			name:          "equal_dates_rejected",
			existing:      nil,
			proposed:      Request{DateFrom: date("2024-06-01"), DateTo: date("2024-06-01"), Guests: 2},
			expectedError: marketerrors.ErrInvalidRange,
		},
		{
			name:          "inverted_dates_rejected",
			existing:      nil,
			proposed:      Request{DateFrom: date("2024-06-05"), DateTo: date("2024-06-01"), Guests: 2},
			expectedError: marketerrors.ErrInvalidRange,
		},
		{
			name:          "zero_guests_rejected",
			existing:      nil,
			proposed:      Request{DateFrom: date("2024-06-01"), DateTo: date("2024-06-05"), Guests: 0},
			expectedError: marketerrors.ErrGuestsOutOfBounds,
		},
		{
			name:          "guests_above_capacity_rejected",
			existing:      nil,
			proposed:      Request{DateFrom: date("2024-06-01"), DateTo: date("2024-06-05"), Guests: 5},
			expectedError: marketerrors.ErrGuestsOutOfBounds,
		},
		{
			name:          "guests_at_capacity_accepted",
			existing:      nil,
			proposed:      Request{DateFrom: date("2024-06-01"), DateTo: date("2024-06-05"), Guests: 4},
			expectedError: nil,
		},
		{
			name:          "checkout_on_existing_checkin_accepted",
			existing:      existing,
			proposed:      Request{DateFrom: date("2024-06-01"), DateTo: date("2024-06-03"), Guests: 2},
			expectedError: nil,
		},
		{
			name:          "checkin_on_existing_checkout_accepted",
			existing:      existing,
			proposed:      Request{DateFrom: date("2024-06-07"), DateTo: date("2024-06-10"), Guests: 2},
			expectedError: nil,
		},
		{
			name:          "contained_range_rejected",
			existing:      existing,
			proposed:      Request{DateFrom: date("2024-06-04"), DateTo: date("2024-06-05"), Guests: 2},
			expectedError: marketerrors.ErrDateConflict,
		},
		{
			name:          "surrounding_range_rejected",
			existing:      existing,
			proposed:      Request{DateFrom: date("2024-06-01"), DateTo: date("2024-06-10"), Guests: 2},
			expectedError: marketerrors.ErrDateConflict,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(venue, tc.existing, tc.proposed)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// The range check runs before the guest check, so a proposal broken in both
// ways reports the range problem first.
func TestValidate_RangeCheckedBeforeGuests(t *testing.T) {
	venue := models.Venue{ID: "venue1", MaxGuests: 2}
	err := Validate(venue, nil, Request{DateFrom: date("2024-06-05"), DateTo: date("2024-06-05"), Guests: 99})
	require.ErrorIs(t, err, marketerrors.ErrInvalidRange)
}

// Validate must not mutate the venue snapshot or the existing bookings.
func TestValidate_PureFunction(t *testing.T) {
	venue := models.Venue{ID: "venue1", MaxGuests: 4}
	existing := []models.Booking{
		{ID: "booking1", DateFrom: date("2024-06-10"), DateTo: date("2024-06-12"), Guests: 1},
	}
	snapshot := existing[0]

	_ = Validate(venue, existing, Request{DateFrom: date("2024-06-01"), DateTo: date("2024-06-05"), Guests: 2})

	require.Equal(t, snapshot, existing[0])
	require.Equal(t, 4, venue.MaxGuests)
}

// Sequential admissible bookings can never overlap each other.
func TestValidate_AdmittedSetStaysConflictFree(t *testing.T) {
	venue := models.Venue{ID: "venue1", MaxGuests: 6}

	proposals := []Request{
		{DateFrom: date("2024-07-01"), DateTo: date("2024-07-05"), Guests: 2},
		{DateFrom: date("2024-07-05"), DateTo: date("2024-07-08"), Guests: 3},
		{DateFrom: date("2024-07-03"), DateTo: date("2024-07-06"), Guests: 1}, // overlaps both
		{DateFrom: date("2024-07-10"), DateTo: date("2024-07-12"), Guests: 6},
	}

	var admitted []models.Booking
	for _, p := range proposals {
		if Validate(venue, admitted, p) == nil {
			admitted = append(admitted, models.Booking{DateFrom: p.DateFrom, DateTo: p.DateTo, Guests: p.Guests})
		}
	}

	require.Len(t, admitted, 3)
	for i := range admitted {
		for j := i + 1; j < len(admitted); j++ {
			require.False(t, Overlaps(admitted[i].DateFrom, admitted[i].DateTo, admitted[j].DateFrom, admitted[j].DateTo),
				"admitted bookings %d and %d overlap", i, j)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		aFrom, aTo, bFrom, bTo string
		want                   bool
	}{
		{"disjoint_before", "2024-06-01", "2024-06-03", "2024-06-05", "2024-06-07", false},
		{"adjacent_endpoints", "2024-06-01", "2024-06-05", "2024-06-05", "2024-06-07", false},
		{"partial_overlap", "2024-06-01", "2024-06-06", "2024-06-05", "2024-06-07", true},
		{"contained", "2024-06-05", "2024-06-06", "2024-06-04", "2024-06-08", true},
		{"identical", "2024-06-01", "2024-06-05", "2024-06-01", "2024-06-05", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Overlaps(date(tc.aFrom), date(tc.aTo), date(tc.bFrom), date(tc.bTo))
			require.Equal(t, tc.want, got)
			// overlap is symmetric
			require.Equal(t, tc.want, Overlaps(date(tc.bFrom), date(tc.bTo), date(tc.aFrom), date(tc.aTo)))
		})
	}
}
