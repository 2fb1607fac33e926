// Package venues implements the booking and venue-management flows: local
// validation against the latest venue snapshot, authoritative gateway
// submission, then reconciliation of the local mirrors.
package venues

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace-client/internal/booking"
	"marketplace-client/internal/gateway"
	"marketplace-client/internal/marketerrors"
	"marketplace-client/internal/models"
	"marketplace-client/internal/session"
	"marketplace-client/utils"
)

// Gateway is the slice of the marketplace client the venue flow uses.
type Gateway interface {
	ListVenues(ctx context.Context, params gateway.ListParams) ([]models.Venue, error)
	GetVenue(ctx context.Context, venueID string) (models.Venue, error)
	CreateBooking(ctx context.Context, token string, sub gateway.BookingSubmission) (models.Booking, error)
	CreateVenue(ctx context.Context, token string, sub gateway.VenueSubmission) (models.Venue, error)
	UpdateVenue(ctx context.Context, token, venueID string, sub gateway.VenueSubmission) (models.Venue, error)
	DeleteVenue(ctx context.Context, token, venueID string) error
}

// Flow coordinates venue operations against the gateway and session cache.
type Flow struct {
	gw    Gateway
	cache *session.Cache
}

// NewFlow creates a new venue Flow instance.
func NewFlow(gw Gateway, cache *session.Cache) *Flow {
	return &Flow{gw: gw, cache: cache}
}

// BrowseVenues fetches venues and applies the free-text name filter locally.
func (f *Flow) BrowseVenues(ctx context.Context, params gateway.ListParams, query string) ([]models.Venue, error) {
	venues, err := f.gw.ListVenues(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("venues: list venues: %w", err)
	}

	if query != "" {
		q := strings.ToLower(query)
		filtered := venues[:0]
		for _, v := range venues {
			if strings.Contains(strings.ToLower(v.Name), q) {
				filtered = append(filtered, v)
			}
		}
		venues = filtered
	}

	return venues, nil
}

// BookVenue runs the two-phase reservation: fetch the venue snapshot, run the
// local validator against its known bookings, then submit. The gateway is
// authoritative for conflicts introduced by bookings not visible in the
// snapshot; its rejection is surfaced verbatim and the mirror stays untouched.
// Only a confirmed booking is appended to the local bookings mirror.
func (f *Flow) BookVenue(ctx context.Context, venueID string, req booking.Request) (models.Booking, error) {
	sess, ok := f.cache.LoadSession()
	if !ok {
		return models.Booking{}, fmt.Errorf("venues: book venue: %w", marketerrors.ErrNoSession)
	}

	venue, err := f.gw.GetVenue(ctx, venueID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("venues: fetch venue %s: %w", venueID, err)
	}

	if err := booking.Validate(venue, venue.Bookings, req); err != nil {
		return models.Booking{}, fmt.Errorf("venues: %w", err)
	}

	confirmed, err := f.gw.CreateBooking(ctx, sess.AccessToken, gateway.BookingSubmission{
		DateFrom: req.DateFrom.UTC().Format(time.RFC3339),
		DateTo:   req.DateTo.UTC().Format(time.RFC3339),
		Guests:   req.Guests,
		VenueID:  venueID,
	})
	if err != nil {
		return models.Booking{}, fmt.Errorf("venues: book venue %s: %w", venueID, err)
	}
	if confirmed.VenueID == "" {
		confirmed.VenueID = venueID
	}

	if err := f.cache.AppendBooking(confirmed); err != nil {
		// The gateway accepted the booking; a mirror write failure must not
		// turn a confirmed reservation into a reported error.
		utils.Warn("venues: booking confirmed but mirror update failed", map[string]any{
			"booking_id": confirmed.ID,
			"error":      err.Error(),
		})
	}

	utils.Info("booking confirmed", map[string]any{
		"venue_id":   venueID,
		"booking_id": confirmed.ID,
		"guests":     confirmed.Guests,
	})
	return confirmed, nil
}

// SavedBookings returns the locally mirrored bookings. A just-submitted
// booking may not yet appear in a fresh venue fetch, so the mirror is what
// gives immediate feedback.
func (f *Flow) SavedBookings() []models.Booking {
	return f.cache.Bookings()
}

// CreateVenue registers a venue with the gateway and mirrors it locally.
func (f *Flow) CreateVenue(ctx context.Context, sub gateway.VenueSubmission) (models.Venue, error) {
	sess, ok := f.cache.LoadSession()
	if !ok {
		return models.Venue{}, fmt.Errorf("venues: create venue: %w", marketerrors.ErrNoSession)
	}

	venue, err := f.gw.CreateVenue(ctx, sess.AccessToken, sub)
	if err != nil {
		return models.Venue{}, fmt.Errorf("venues: create venue: %w", err)
	}

	if err := f.cache.AppendCreatedVenue(venue); err != nil {
		utils.Warn("venues: venue created but mirror update failed", map[string]any{
			"venue_id": venue.ID,
			"error":    err.Error(),
		})
	}
	return venue, nil
}

// UpdateVenue replaces a venue's details on the gateway.
func (f *Flow) UpdateVenue(ctx context.Context, venueID string, sub gateway.VenueSubmission) (models.Venue, error) {
	sess, ok := f.cache.LoadSession()
	if !ok {
		return models.Venue{}, fmt.Errorf("venues: update venue: %w", marketerrors.ErrNoSession)
	}

	venue, err := f.gw.UpdateVenue(ctx, sess.AccessToken, venueID, sub)
	if err != nil {
		return models.Venue{}, fmt.Errorf("venues: update venue %s: %w", venueID, err)
	}
	return venue, nil
}

// DeleteVenue removes a venue on the gateway and drops it from the mirror.
func (f *Flow) DeleteVenue(ctx context.Context, venueID string) error {
	sess, ok := f.cache.LoadSession()
	if !ok {
		return fmt.Errorf("venues: delete venue: %w", marketerrors.ErrNoSession)
	}

	if err := f.gw.DeleteVenue(ctx, sess.AccessToken, venueID); err != nil {
		return fmt.Errorf("venues: delete venue %s: %w", venueID, err)
	}

	if err := f.cache.RemoveCreatedVenue(venueID); err != nil {
		utils.Warn("venues: venue deleted but mirror update failed", map[string]any{
			"venue_id": venueID,
			"error":    err.Error(),
		})
	}
	return nil
}

// CreatedVenues returns the locally mirrored venues the user created.
func (f *Flow) CreatedVenues() []models.Venue {
	return f.cache.CreatedVenues()
}
