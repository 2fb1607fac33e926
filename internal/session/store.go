package session

// Store is a string key-value persistence facility. Implementations must be
// safe for use from multiple goroutines.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set writes the value for key, overwriting any prior value.
	Set(key, value string) error
	// Delete removes the value for key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Storage keys. These match the key names the web client of the marketplace
// stores under, so the two can share a populated store.
const (
	KeySession         = "registeredUser"
	KeyCreatedListings = "createdListings"
	KeyCreatedVenues   = "createdVenues"
	KeyBookings        = "bookings"
)

// allKeys is everything Clear removes.
var allKeys = []string{KeySession, KeyCreatedListings, KeyCreatedVenues, KeyBookings}
