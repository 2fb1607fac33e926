package gateway

import (
	"context"
	"fmt"
	"net/http"

	"marketplace-client/internal/models"
)

// Credentials is the payload for registration and login.
type Credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar,omitempty"`
}

// ListingSubmission is the payload for creating an auction listing.
type ListingSubmission struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Media       []string `json:"media"`
	Tags        []string `json:"tags"`
	EndsAt      string   `json:"endsAt"`
}

// Register creates a new marketplace account and returns the resulting
// session, including the access credential.
func (c *Client) Register(ctx context.Context, creds Credentials) (models.Session, error) {
	var s models.Session
	if err := c.do(ctx, http.MethodPost, "/auction/auth/register", "", creds, &s); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

// Login authenticates against the marketplace and returns the session.
func (c *Client) Login(ctx context.Context, creds Credentials) (models.Session, error) {
	var s models.Session
	if err := c.do(ctx, http.MethodPost, "/auction/auth/login", "", creds, &s); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

// ListListings retrieves auction listings with their bid history embedded.
func (c *Client) ListListings(ctx context.Context, params ListParams) ([]models.Listing, error) {
	path := "/auction/listings?_bids=true"
	if q := params.query(); q != "" {
		path += "&" + q
	}

	var listings []models.Listing
	if err := c.do(ctx, http.MethodGet, path, "", nil, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// GetBids retrieves the bid history for one listing.
func (c *Client) GetBids(ctx context.Context, listingID string) ([]models.Bid, error) {
	path := fmt.Sprintf("/auction/listings/%s/bids", listingID)

	var bids []models.Bid
	if err := c.do(ctx, http.MethodGet, path, "", nil, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

// CreateListing registers a new auction listing owned by the authenticated
// user.
func (c *Client) CreateListing(ctx context.Context, token string, sub ListingSubmission) (models.Listing, error) {
	var listing models.Listing
	if err := c.do(ctx, http.MethodPost, "/auction/listings", token, sub, &listing); err != nil {
		return models.Listing{}, err
	}
	return listing, nil
}

// PlaceBid submits a bid. The gateway rejects it when the amount is not
// strictly greater than the current highest, including highs introduced by
// concurrent bidders the caller has not seen yet.
func (c *Client) PlaceBid(ctx context.Context, token, listingID string, amount float64) (models.Bid, error) {
	path := fmt.Sprintf("/auction/listings/%s/bids", listingID)
	payload := map[string]float64{"amount": amount}

	var bid models.Bid
	if err := c.do(ctx, http.MethodPost, path, token, payload, &bid); err != nil {
		return models.Bid{}, err
	}
	return bid, nil
}
