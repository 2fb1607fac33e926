// Package auction implements the bidding flow: a local pre-check with the
// bid evaluator, then the authoritative gateway submission, then cache
// reconciliation. The local verdict never stands in for the gateway's.
package auction

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"marketplace-client/internal/bidding"
	"marketplace-client/internal/gateway"
	"marketplace-client/internal/marketerrors"
	"marketplace-client/internal/models"
	"marketplace-client/internal/session"
	"marketplace-client/utils"
)

// Gateway is the slice of the marketplace client the auction flow uses.
type Gateway interface {
	ListListings(ctx context.Context, params gateway.ListParams) ([]models.Listing, error)
	GetBids(ctx context.Context, listingID string) ([]models.Bid, error)
	PlaceBid(ctx context.Context, token, listingID string, amount float64) (models.Bid, error)
	CreateListing(ctx context.Context, token string, sub gateway.ListingSubmission) (models.Listing, error)
}

// SortMode selects the listing display order.
type SortMode int

const (
	SortNewest SortMode = iota // default: newest first
	SortOldest
	SortByBids
)

// Flow coordinates auction operations against the gateway and session cache.
type Flow struct {
	gw    Gateway
	cache *session.Cache
}

// NewFlow creates a new auction Flow instance.
func NewFlow(gw Gateway, cache *session.Cache) *Flow {
	return &Flow{gw: gw, cache: cache}
}

// BrowseListings fetches listings and applies the free-text title filter and
// sort mode locally, on the page the gateway returned.
func (f *Flow) BrowseListings(ctx context.Context, params gateway.ListParams, query string, mode SortMode) ([]models.Listing, error) {
	listings, err := f.gw.ListListings(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("auction: list listings: %w", err)
	}

	if query != "" {
		q := strings.ToLower(query)
		filtered := listings[:0]
		for _, l := range listings {
			if strings.Contains(strings.ToLower(l.Title), q) {
				filtered = append(filtered, l)
			}
		}
		listings = filtered
	}

	sort.SliceStable(listings, func(i, j int) bool {
		switch mode {
		case SortOldest:
			return listings[i].Created.Before(listings[j].Created)
		case SortByBids:
			return listings[i].Count.Bids < listings[j].Count.Bids
		default:
			return listings[j].Created.Before(listings[i].Created)
		}
	})

	return listings, nil
}

// ViewBids returns a listing's bid history ranked ascending by creation time.
func (f *Flow) ViewBids(ctx context.Context, listingID string) ([]models.Bid, error) {
	if listingID == "" {
		return nil, fmt.Errorf("auction: %w - empty listing ID", marketerrors.ErrInvalidAmount)
	}

	bids, err := f.gw.GetBids(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("auction: get bids for listing %s: %w", listingID, err)
	}
	return bidding.Rank(bids), nil
}

// PlaceBid runs the two-phase bid submission: the local evaluator first, and
// only when it accepts does the bid go to the gateway. The gateway may still
// reject for a concurrent higher bid; that rejection is returned verbatim and
// no local state changes.
func (f *Flow) PlaceBid(ctx context.Context, listingID string, amount float64) (models.Bid, error) {
	sess, ok := f.cache.LoadSession()
	if !ok {
		return models.Bid{}, fmt.Errorf("auction: place bid: %w", marketerrors.ErrNoSession)
	}
	if listingID == "" {
		return models.Bid{}, fmt.Errorf("auction: %w - empty listing ID", marketerrors.ErrInvalidAmount)
	}

	history, err := f.gw.GetBids(ctx, listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("auction: fetch bids for listing %s: %w", listingID, err)
	}

	if err := bidding.Evaluate(bidding.Highest(history), amount); err != nil {
		return models.Bid{}, fmt.Errorf("auction: %w", err)
	}

	confirmed, err := f.gw.PlaceBid(ctx, sess.AccessToken, listingID, amount)
	if err != nil {
		return models.Bid{}, fmt.Errorf("auction: place bid on listing %s: %w", listingID, err)
	}

	utils.Info("bid confirmed", map[string]any{
		"listing_id": listingID,
		"bid_id":     confirmed.ID,
		"amount":     confirmed.Amount,
	})
	return confirmed, nil
}

// CreateListing registers a listing with the gateway and mirrors it locally.
func (f *Flow) CreateListing(ctx context.Context, sub gateway.ListingSubmission) (models.Listing, error) {
	sess, ok := f.cache.LoadSession()
	if !ok {
		return models.Listing{}, fmt.Errorf("auction: create listing: %w", marketerrors.ErrNoSession)
	}

	listing, err := f.gw.CreateListing(ctx, sess.AccessToken, sub)
	if err != nil {
		return models.Listing{}, fmt.Errorf("auction: create listing: %w", err)
	}

	if err := f.cache.AppendCreatedListing(listing); err != nil {
		// The gateway accepted the listing; a mirror write failure must not
		// turn a confirmed creation into a reported error.
		utils.Warn("auction: listing created but mirror update failed", map[string]any{
			"listing_id": listing.ID,
			"error":      err.Error(),
		})
	}
	return listing, nil
}

// CreatedListings returns the locally mirrored listings the user created.
func (f *Flow) CreatedListings() []models.Listing {
	return f.cache.CreatedListings()
}
