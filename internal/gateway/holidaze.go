package gateway

import (
	"context"
	"fmt"
	"net/http"

	"marketplace-client/internal/models"
)

// VenueSubmission is the payload for creating or updating a venue.
type VenueSubmission struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Media       []string         `json:"media"`
	Price       float64          `json:"price"`
	MaxGuests   int              `json:"maxGuests"`
	Rating      float64          `json:"rating,omitempty"`
	Meta        *models.Meta     `json:"meta,omitempty"`
	Location    *models.Location `json:"location,omitempty"`
}

// BookingSubmission is the payload for reserving a venue.
type BookingSubmission struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
	VenueID  string `json:"venueId"`
}

// ListVenues retrieves bookable venues.
func (c *Client) ListVenues(ctx context.Context, params ListParams) ([]models.Venue, error) {
	path := "/holidaze/venues"
	if q := params.query(); q != "" {
		path += "?" + q
	}

	var venues []models.Venue
	if err := c.do(ctx, http.MethodGet, path, "", nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

// GetVenue retrieves one venue with its bookings embedded, the snapshot the
// booking validator runs against.
func (c *Client) GetVenue(ctx context.Context, venueID string) (models.Venue, error) {
	path := fmt.Sprintf("/holidaze/venues/%s?_bookings=true", venueID)

	var venue models.Venue
	if err := c.do(ctx, http.MethodGet, path, "", nil, &venue); err != nil {
		return models.Venue{}, err
	}
	return venue, nil
}

// CreateBooking submits a reservation. The gateway rejects it on capacity or
// date-conflict violations, including conflicts from concurrent bookings not
// visible in the caller's venue snapshot.
func (c *Client) CreateBooking(ctx context.Context, token string, sub BookingSubmission) (models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/holidaze/bookings", token, sub, &booking); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// CreateVenue registers a new venue owned by the authenticated user.
func (c *Client) CreateVenue(ctx context.Context, token string, sub VenueSubmission) (models.Venue, error) {
	var venue models.Venue
	if err := c.do(ctx, http.MethodPost, "/holidaze/venues", token, sub, &venue); err != nil {
		return models.Venue{}, err
	}
	return venue, nil
}

// UpdateVenue replaces an existing venue's details.
func (c *Client) UpdateVenue(ctx context.Context, token, venueID string, sub VenueSubmission) (models.Venue, error) {
	path := fmt.Sprintf("/holidaze/venues/%s", venueID)

	var venue models.Venue
	if err := c.do(ctx, http.MethodPut, path, token, sub, &venue); err != nil {
		return models.Venue{}, err
	}
	return venue, nil
}

// DeleteVenue removes a venue owned by the authenticated user.
func (c *Client) DeleteVenue(ctx context.Context, token, venueID string) error {
	path := fmt.Sprintf("/holidaze/venues/%s", venueID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
