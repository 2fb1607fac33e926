package integrationtests

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketplace-client/internal/gateway"
	"marketplace-client/internal/gatewaytest"
	"marketplace-client/internal/models"
	"marketplace-client/internal/session"
	"marketplace-client/services/account"
	"marketplace-client/services/auction"
	"marketplace-client/services/venues"
)

// env wires the whole client stack against an in-process fake gateway.
type env struct {
	fake     *gatewaytest.Server
	server   *httptest.Server
	client   *gateway.Client
	cache    *session.Cache
	accounts *account.Service
	auctions *auction.Flow
	holidaze *venues.Flow
}

// newEnv starts a fake gateway and builds the flows on a fresh in-memory cache.
func newEnv(t *testing.T) *env {
	t.Helper()

	fake := gatewaytest.NewServer()
	server := httptest.NewServer(fake.Router())
	t.Cleanup(server.Close)

	client := gateway.NewClientWithHTTP(server.URL, server.Client())
	cache := session.NewCache(session.NewMemoryStore())

	return &env{
		fake:     fake,
		server:   server,
		client:   client,
		cache:    cache,
		accounts: account.NewService(client, cache, "@stud.noroff.no"),
		auctions: auction.NewFlow(client, cache),
		holidaze: venues.NewFlow(client, cache),
	}
}

// register creates an account on the fake gateway and leaves the env logged in.
func (e *env) register(t *testing.T, name, email string) models.Session {
	t.Helper()
	sess, err := e.accounts.Register(context.Background(), name, email, "password123")
	require.NoError(t, err)
	return sess
}

// secondUser builds an independent client stack against the same fake
// gateway, for simulating a concurrent user.
func (e *env) secondUser(t *testing.T, name, email string) (*auction.Flow, *venues.Flow) {
	t.Helper()

	client := gateway.NewClientWithHTTP(e.server.URL, e.server.Client())
	cache := session.NewCache(session.NewMemoryStore())
	accounts := account.NewService(client, cache, "@stud.noroff.no")

	_, err := accounts.Register(context.Background(), name, email, "password123")
	require.NoError(t, err)

	return auction.NewFlow(client, cache), venues.NewFlow(client, cache)
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

// seedListing adds an open listing to the fake gateway.
func seedListing(e *env, id, title string) {
	e.fake.AddListing(models.Listing{
		ID:      id,
		Title:   title,
		Created: time.Now().UTC(),
		EndsAt:  time.Now().UTC().Add(24 * time.Hour),
	})
}

// seedVenue adds a venue to the fake gateway.
func seedVenue(e *env, id, name string, maxGuests int) {
	e.fake.AddVenue(models.Venue{
		ID:        id,
		Name:      name,
		Price:     100,
		MaxGuests: maxGuests,
	})
}
