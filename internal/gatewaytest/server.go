// Package gatewaytest is an in-process stand-in for the remote marketplace
// gateway, used by integration tests. It enforces the same authoritative
// rules the hosted API does: bids must strictly exceed the current highest,
// and bookings must fit venue capacity and not overlap existing ones.
package gatewaytest

import (
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-client/internal/models"
	"marketplace-client/utils"
)

type account struct {
	session  models.Session
	password string
}

// Server holds the fake gateway's authoritative state.
type Server struct {
	mu       sync.Mutex
	accounts map[string]account // keyed by email
	tokens   map[string]string  // token -> user name
	listings map[string]*models.Listing
	venues   map[string]*models.Venue
	order    []string // listing IDs in insertion order
	vorder   []string // venue IDs in insertion order
}

// NewServer creates an empty fake gateway.
func NewServer() *Server {
	return &Server{
		accounts: make(map[string]account),
		tokens:   make(map[string]string),
		listings: make(map[string]*models.Listing),
		venues:   make(map[string]*models.Venue),
	}
}

// Router configures the gin routes matching the marketplace API surface the
// client consumes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware)

	auction := router.Group("/auction")
	{
		auction.POST("/auth/register", s.registerHandler)
		auction.POST("/auth/login", s.loginHandler)
		auction.GET("/listings", s.listListingsHandler)
		auction.POST("/listings", s.createListingHandler)
		auction.GET("/listings/:listing_id/bids", s.getBidsHandler)
		auction.POST("/listings/:listing_id/bids", s.placeBidHandler)
	}

	holidaze := router.Group("/holidaze")
	{
		holidaze.GET("/venues", s.listVenuesHandler)
		holidaze.GET("/venues/:venue_id", s.getVenueHandler)
		holidaze.POST("/venues", s.createVenueHandler)
		holidaze.PUT("/venues/:venue_id", s.updateVenueHandler)
		holidaze.DELETE("/venues/:venue_id", s.deleteVenueHandler)
		holidaze.POST("/bookings", s.createBookingHandler)
	}

	return router
}

// AddListing seeds a listing. Intended for tests.
func (s *Server) AddListing(l models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := l
	s.listings[l.ID] = &copied
	s.order = append(s.order, l.ID)
}

// AddVenue seeds a venue. Intended for tests.
func (s *Server) AddVenue(v models.Venue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := v
	s.venues[v.ID] = &copied
	s.vorder = append(s.vorder, v.ID)
}

func (s *Server) registerHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Avatar   string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid registration payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[req.Email]; exists {
		utils.JSONError(c, http.StatusBadRequest, "Profile already exists")
		return
	}

	session := models.Session{
		Name:        req.Name,
		Email:       req.Email,
		Avatar:      req.Avatar,
		Credits:     1000,
		AccessToken: utils.GenerateID(),
	}
	s.accounts[req.Email] = account{session: session, password: req.Password}
	s.tokens[session.AccessToken] = session.Name

	utils.JSONResponse(c, http.StatusCreated, session)
}

func (s *Server) loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid login payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[req.Email]
	if !ok || acct.password != req.Password {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	utils.JSONResponse(c, http.StatusOK, acct.session)
}

// authenticate resolves the bearer token to a user name, writing the
// gateway's 401 envelope when it cannot.
func (s *Server) authenticate(c *gin.Context) (string, bool) {
	const prefix = "Bearer "
	header := c.GetHeader("Authorization")
	if len(header) <= len(prefix) {
		utils.JSONError(c, http.StatusUnauthorized, "No authorization header provided")
		return "", false
	}

	s.mu.Lock()
	name, ok := s.tokens[header[len(prefix):]]
	s.mu.Unlock()
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid authorization token")
		return "", false
	}
	return name, true
}

func paginate(c *gin.Context, total int) (int, int) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	if limit <= 0 || limit > total {
		limit = total
	}
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return offset, end
}

func (s *Server) listListingsHandler(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]models.Listing, 0, len(s.order))
	for _, id := range s.order {
		l := *s.listings[id]
		l.Count = models.Counts{Bids: len(l.Bids)}
		if c.Query("_bids") != "true" {
			l.Bids = nil
		}
		all = append(all, l)
	}

	from, to := paginate(c, len(all))
	utils.JSONResponse(c, http.StatusOK, all[from:to])
}

func (s *Server) createListingHandler(c *gin.Context) {
	if _, ok := s.authenticate(c); !ok {
		return
	}

	var req struct {
		Title       string    `json:"title" binding:"required"`
		Description string    `json:"description"`
		Media       []string  `json:"media"`
		Tags        []string  `json:"tags"`
		EndsAt      time.Time `json:"endsAt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.EndsAt.After(time.Now()) {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing payload")
		return
	}

	listing := models.Listing{
		ID:          utils.GenerateID(),
		Title:       req.Title,
		Description: req.Description,
		Media:       req.Media,
		Tags:        req.Tags,
		Created:     time.Now().UTC(),
		Updated:     time.Now().UTC(),
		EndsAt:      req.EndsAt,
	}

	s.mu.Lock()
	s.listings[listing.ID] = &listing
	s.order = append(s.order, listing.ID)
	s.mu.Unlock()

	utils.JSONResponse(c, http.StatusCreated, listing)
}

func (s *Server) getBidsHandler(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[c.Param("listing_id")]
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "No listing with such ID")
		return
	}

	bids := append([]models.Bid(nil), listing.Bids...)
	sort.SliceStable(bids, func(i, j int) bool { return bids[i].Created.Before(bids[j].Created) })
	utils.JSONResponse(c, http.StatusOK, bids)
}

func (s *Server) placeBidHandler(c *gin.Context) {
	bidder, ok := s.authenticate(c)
	if !ok {
		return
	}

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Amount must be a positive number")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listing, found := s.listings[c.Param("listing_id")]
	if !found {
		utils.JSONError(c, http.StatusNotFound, "No listing with such ID")
		return
	}
	if listing.Closed(time.Now()) {
		utils.JSONError(c, http.StatusBadRequest, "Listing has already ended")
		return
	}
	for _, b := range listing.Bids {
		if req.Amount <= b.Amount {
			utils.JSONError(c, http.StatusBadRequest, "Your bid must be higher than the current bid")
			return
		}
	}

	bid := models.Bid{
		ID:         utils.GenerateID(),
		Amount:     req.Amount,
		BidderName: bidder,
		Created:    time.Now().UTC(),
	}
	listing.Bids = append(listing.Bids, bid)

	utils.JSONResponse(c, http.StatusCreated, bid)
}

func (s *Server) listVenuesHandler(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]models.Venue, 0, len(s.vorder))
	for _, id := range s.vorder {
		v := *s.venues[id]
		v.Bookings = nil
		all = append(all, v)
	}

	from, to := paginate(c, len(all))
	utils.JSONResponse(c, http.StatusOK, all[from:to])
}

func (s *Server) getVenueHandler(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	venue, ok := s.venues[c.Param("venue_id")]
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "No venue with such ID")
		return
	}

	v := *venue
	if c.Query("_bookings") != "true" {
		v.Bookings = nil
	}
	utils.JSONResponse(c, http.StatusOK, v)
}

func (s *Server) createVenueHandler(c *gin.Context) {
	if _, ok := s.authenticate(c); !ok {
		return
	}

	var req struct {
		Name        string           `json:"name" binding:"required"`
		Description string           `json:"description"`
		Media       []string         `json:"media"`
		Price       float64          `json:"price"`
		MaxGuests   int              `json:"maxGuests" binding:"required"`
		Rating      float64          `json:"rating"`
		Meta        *models.Meta     `json:"meta"`
		Location    *models.Location `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Price < 0 || req.MaxGuests < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid venue payload")
		return
	}

	venue := models.Venue{
		ID:          utils.GenerateID(),
		Name:        req.Name,
		Description: req.Description,
		Media:       req.Media,
		Price:       req.Price,
		MaxGuests:   req.MaxGuests,
		Rating:      req.Rating,
		Meta:        req.Meta,
		Location:    req.Location,
		Created:     time.Now().UTC(),
		Updated:     time.Now().UTC(),
	}

	s.mu.Lock()
	s.venues[venue.ID] = &venue
	s.vorder = append(s.vorder, venue.ID)
	s.mu.Unlock()

	utils.JSONResponse(c, http.StatusCreated, venue)
}

func (s *Server) updateVenueHandler(c *gin.Context) {
	if _, ok := s.authenticate(c); !ok {
		return
	}

	var req struct {
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Media       []string         `json:"media"`
		Price       float64          `json:"price"`
		MaxGuests   int              `json:"maxGuests"`
		Rating      float64          `json:"rating"`
		Meta        *models.Meta     `json:"meta"`
		Location    *models.Location `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid venue payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	venue, ok := s.venues[c.Param("venue_id")]
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "No venue with such ID")
		return
	}

	venue.Name = req.Name
	venue.Description = req.Description
	venue.Media = req.Media
	venue.Price = req.Price
	venue.MaxGuests = req.MaxGuests
	venue.Rating = req.Rating
	venue.Meta = req.Meta
	venue.Location = req.Location
	venue.Updated = time.Now().UTC()

	utils.JSONResponse(c, http.StatusOK, *venue)
}

func (s *Server) deleteVenueHandler(c *gin.Context) {
	if _, ok := s.authenticate(c); !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("venue_id")
	if _, ok := s.venues[id]; !ok {
		utils.JSONError(c, http.StatusNotFound, "No venue with such ID")
		return
	}

	delete(s.venues, id)
	for i, vid := range s.vorder {
		if vid == id {
			s.vorder = append(s.vorder[:i], s.vorder[i+1:]...)
			break
		}
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) createBookingHandler(c *gin.Context) {
	if _, ok := s.authenticate(c); !ok {
		return
	}

	var req struct {
		DateFrom time.Time `json:"dateFrom" binding:"required"`
		DateTo   time.Time `json:"dateTo" binding:"required"`
		Guests   int       `json:"guests" binding:"required"`
		VenueID  string    `json:"venueId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	venue, ok := s.venues[req.VenueID]
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "No venue with such ID")
		return
	}
	if !req.DateTo.After(req.DateFrom) {
		utils.JSONError(c, http.StatusBadRequest, "dateTo must be after dateFrom")
		return
	}
	if req.Guests < 1 || req.Guests > venue.MaxGuests {
		utils.JSONError(c, http.StatusBadRequest, "Guests exceeds venue capacity")
		return
	}
	for _, b := range venue.Bookings {
		// half-open intervals: back-to-back stays are allowed
		if req.DateFrom.Before(b.DateTo) && b.DateFrom.Before(req.DateTo) {
			utils.JSONError(c, http.StatusConflict, "The selected dates are no longer available")
			return
		}
	}

	booking := models.Booking{
		ID:       utils.GenerateID(),
		VenueID:  req.VenueID,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Guests:   req.Guests,
		Created:  time.Now().UTC(),
	}
	venue.Bookings = append(venue.Bookings, booking)

	utils.JSONResponse(c, http.StatusCreated, booking)
}
