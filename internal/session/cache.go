package session

import (
	"encoding/json"
	"fmt"

	"marketplace-client/internal/models"
	"marketplace-client/utils"
)

// Cache is the local mirror of the authenticated identity and the user's
// created resources. It is never a source of truth: the remote gateway is
// authoritative for all entity state, and the cache exists to avoid redundant
// re-authentication and to give optimistic feedback before a round trip
// completes.
//
// Malformed stored data is treated as absent, never as an error.
type Cache struct {
	store Store
}

// NewCache creates a cache on top of the given store.
func NewCache(store Store) *Cache {
	return &Cache{store: store}
}

// SaveSession writes the session record, overwriting any prior one.
func (c *Cache) SaveSession(s models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("cache: marshal session: %w", err)
	}
	if err := c.store.Set(KeySession, string(data)); err != nil {
		return fmt.Errorf("cache: save session: %w", err)
	}
	return nil
}

// LoadSession returns the cached session and whether one is usable. A missing
// or unparseable value, or one without an access token, reads as no session.
func (c *Cache) LoadSession() (models.Session, bool) {
	raw, ok, err := c.store.Get(KeySession)
	if err != nil || !ok {
		if err != nil {
			utils.Warn("cache: session read failed, treating as logged out", map[string]any{"error": err.Error()})
		}
		return models.Session{}, false
	}

	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil || s.AccessToken == "" {
		return models.Session{}, false
	}
	return s, true
}

// Clear removes the session and every locally cached resource list.
func (c *Cache) Clear() error {
	for _, key := range allKeys {
		if err := c.store.Delete(key); err != nil {
			return fmt.Errorf("cache: clear %s: %w", key, err)
		}
	}
	return nil
}

// Bookings returns the locally mirrored bookings the user has created.
func (c *Cache) Bookings() []models.Booking {
	var bookings []models.Booking
	c.loadList(KeyBookings, &bookings)
	return bookings
}

// AppendBooking adds a gateway-confirmed booking to the local mirror.
func (c *Cache) AppendBooking(b models.Booking) error {
	bookings := c.Bookings()
	return c.saveList(KeyBookings, append(bookings, b))
}

// CreatedVenues returns the locally mirrored venues the user has created.
func (c *Cache) CreatedVenues() []models.Venue {
	var venues []models.Venue
	c.loadList(KeyCreatedVenues, &venues)
	return venues
}

// AppendCreatedVenue adds a gateway-confirmed venue to the local mirror.
func (c *Cache) AppendCreatedVenue(v models.Venue) error {
	venues := c.CreatedVenues()
	return c.saveList(KeyCreatedVenues, append(venues, v))
}

// RemoveCreatedVenue drops a venue from the local mirror after the gateway
// confirms its deletion.
func (c *Cache) RemoveCreatedVenue(venueID string) error {
	venues := c.CreatedVenues()
	kept := venues[:0]
	for _, v := range venues {
		if v.ID != venueID {
			kept = append(kept, v)
		}
	}
	return c.saveList(KeyCreatedVenues, kept)
}

// CreatedListings returns the locally mirrored listings the user has created.
func (c *Cache) CreatedListings() []models.Listing {
	var listings []models.Listing
	c.loadList(KeyCreatedListings, &listings)
	return listings
}

// AppendCreatedListing adds a gateway-confirmed listing to the local mirror.
func (c *Cache) AppendCreatedListing(l models.Listing) error {
	listings := c.CreatedListings()
	return c.saveList(KeyCreatedListings, append(listings, l))
}

// loadList decodes a mirrored list, treating anything unreadable as empty.
func (c *Cache) loadList(key string, out any) {
	raw, ok, err := c.store.Get(key)
	if err != nil || !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		utils.Warn("cache: discarding malformed mirror", map[string]any{"key": key})
	}
}

func (c *Cache) saveList(key string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}
	if err := c.store.Set(key, string(data)); err != nil {
		return fmt.Errorf("cache: save %s: %w", key, err)
	}
	return nil
}
