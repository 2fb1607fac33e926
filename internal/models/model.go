package models

import "time"

// Session is the locally cached representation of the authenticated user.
// The access token is an opaque credential issued by the gateway; it is
// cached in clear text, matching the trust boundary of the hosted API.
type Session struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Avatar      string  `json:"avatar"`
	Credits     float64 `json:"credits"`
	AccessToken string  `json:"accessToken"`
}

// Listing represents an auction item accepting bids until its close time.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Media       []string  `json:"media"`
	Tags        []string  `json:"tags"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
	EndsAt      time.Time `json:"endsAt"`
	Count       Counts    `json:"_count"`
	Bids        []Bid     `json:"bids,omitempty"`
}

// Counts carries the gateway's aggregate counters for a listing.
type Counts struct {
	Bids int `json:"bids"`
}

// Closed reports whether the listing no longer accepts bids at the given time.
func (l Listing) Closed(now time.Time) bool {
	return !l.EndsAt.IsZero() && !now.Before(l.EndsAt)
}

// Bid is a monetary offer against a listing. Bids are append-only: the
// gateway never mutates or deletes one once recorded.
type Bid struct {
	ID         string    `json:"id"`
	Amount     float64   `json:"amount"`
	BidderName string    `json:"bidderName"`
	Created    time.Time `json:"created"`
}

// Venue is a bookable property with a nightly price and guest capacity.
// Meta and Location are optional in gateway payloads; callers should go
// through the Amenities and Loc accessors rather than the pointers.
type Venue struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Media       []string  `json:"media"`
	Price       float64   `json:"price"`
	MaxGuests   int       `json:"maxGuests"`
	Rating      float64   `json:"rating"`
	Meta        *Meta     `json:"meta,omitempty"`
	Location    *Location `json:"location,omitempty"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
	Bookings    []Booking `json:"bookings,omitempty"`
}

// Meta holds a venue's amenity flags.
type Meta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// Location describes where a venue is. Every field may be empty.
type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// Amenities returns the venue's amenity flags, defaulting to all-off when the
// gateway omitted the meta object.
func (v Venue) Amenities() Meta {
	if v.Meta == nil {
		return Meta{}
	}
	return *v.Meta
}

// Loc returns the venue's location, defaulting to the zero Location when the
// gateway omitted it.
func (v Venue) Loc() Location {
	if v.Location == nil {
		return Location{}
	}
	return *v.Location
}

// Booking is a reserved date interval against a venue. Intervals are
// half-open: [DateFrom, DateTo), so a checkout date may equal another
// booking's check-in date without conflict.
type Booking struct {
	ID       string    `json:"id"`
	VenueID  string    `json:"venueId,omitempty"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Created  time.Time `json:"created"`
}
