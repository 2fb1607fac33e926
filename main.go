package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/go-redis/redis/v8"

	"marketplace-client/internal/booking"
	"marketplace-client/internal/config"
	"marketplace-client/internal/gateway"
	"marketplace-client/internal/marketerrors"
	"marketplace-client/internal/models"
	"marketplace-client/internal/session"
	"marketplace-client/services/account"
	"marketplace-client/services/auction"
	"marketplace-client/services/venues"
)

var (
	headline = color.New(color.FgCyan, color.Bold)
	success  = color.New(color.FgGreen)
	failure  = color.New(color.FgRed)
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	cache := session.NewCache(newStore(cfg))
	client := gateway.NewClient(cfg.BaseURL)

	accounts := account.NewService(client, cache, cfg.EmailDomain)
	auctions := auction.NewFlow(client, cache)
	holidaze := venues.NewFlow(client, cache)

	ctx := context.Background()

	if err := dispatch(ctx, os.Args[1], os.Args[2:], accounts, auctions, holidaze); err != nil {
		switch {
		case marketerrors.IsValidation(err):
			failure.Fprintf(os.Stderr, "rejected before submission: %v\n", err)
		default:
			if ge, ok := marketerrors.IsGatewayError(err); ok {
				failure.Fprintf(os.Stderr, "marketplace rejected the request (%d): %s\n", ge.StatusCode, ge.Message)
			} else {
				failure.Fprintln(os.Stderr, err)
			}
		}
		os.Exit(1)
	}
}

// newStore picks the session storage backend from config.
func newStore(cfg config.Config) session.Store {
	switch cfg.SessionBackend {
	case "memory":
		return session.NewMemoryStore()
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		return session.NewRedisStore(client, cfg.RedisHash)
	default:
		return session.NewFileStore(cfg.SessionFile)
	}
}

func dispatch(ctx context.Context, command string, args []string, accounts *account.Service, auctions *auction.Flow, holidaze *venues.Flow) error {
	switch command {
	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		name := fs.String("name", "", "profile name")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(args)
		sess, err := accounts.Register(ctx, *name, *email, *password)
		if err != nil {
			return err
		}
		success.Printf("registered and logged in as %s\n", sess.Name)
		return nil

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(args)
		sess, err := accounts.Login(ctx, *email, *password)
		if err != nil {
			return err
		}
		success.Printf("logged in as %s (credits: %.0f)\n", sess.Name, sess.Credits)
		return nil

	case "logout":
		if err := accounts.Logout(); err != nil {
			return err
		}
		success.Println("logged out, local cache cleared")
		return nil

	case "whoami":
		sess, ok := accounts.Current()
		if !ok {
			return fmt.Errorf("whoami: %w", marketerrors.ErrNoSession)
		}
		headline.Printf("%s <%s>\n", sess.Name, sess.Email)
		fmt.Printf("credits: %.0f\n", sess.Credits)
		return nil

	case "avatar":
		fs := flag.NewFlagSet("avatar", flag.ExitOnError)
		url := fs.String("url", "", "avatar image URL")
		fs.Parse(args)
		if _, err := accounts.UpdateAvatar(*url); err != nil {
			return err
		}
		success.Println("avatar updated")
		return nil

	case "listings":
		fs := flag.NewFlagSet("listings", flag.ExitOnError)
		query := fs.String("search", "", "filter by title")
		limit := fs.Int("limit", 10, "page size")
		offset := fs.Int("offset", 0, "page offset")
		byBids := fs.Bool("by-bids", false, "sort by bid count")
		oldest := fs.Bool("oldest", false, "sort oldest first")
		fs.Parse(args)

		mode := auction.SortNewest
		if *oldest {
			mode = auction.SortOldest
		}
		if *byBids {
			mode = auction.SortByBids
		}

		listings, err := auctions.BrowseListings(ctx, gateway.ListParams{Limit: *limit, Offset: *offset}, *query, mode)
		if err != nil {
			return err
		}
		for _, l := range listings {
			printListing(l)
		}
		return nil

	case "bids":
		fs := flag.NewFlagSet("bids", flag.ExitOnError)
		listingID := fs.String("listing", "", "listing ID")
		fs.Parse(args)
		bids, err := auctions.ViewBids(ctx, *listingID)
		if err != nil {
			return err
		}
		for _, b := range bids {
			fmt.Printf("%s  %-20s %10.2f\n", b.Created.Format(time.RFC3339), b.BidderName, b.Amount)
		}
		return nil

	case "bid":
		fs := flag.NewFlagSet("bid", flag.ExitOnError)
		listingID := fs.String("listing", "", "listing ID")
		amount := fs.Float64("amount", 0, "bid amount")
		fs.Parse(args)
		confirmed, err := auctions.PlaceBid(ctx, *listingID, *amount)
		if err != nil {
			return err
		}
		success.Printf("bid of %.2f confirmed (bid %s)\n", confirmed.Amount, confirmed.ID)
		return nil

	case "create-listing":
		fs := flag.NewFlagSet("create-listing", flag.ExitOnError)
		title := fs.String("title", "", "listing title")
		description := fs.String("description", "", "listing description")
		endsAt := fs.String("ends", "", "auction close time (YYYY-MM-DD)")
		fs.Parse(args)

		ends, err := time.Parse("2006-01-02", *endsAt)
		if err != nil {
			return fmt.Errorf("create-listing: bad -ends date: %w", err)
		}

		listing, err := auctions.CreateListing(ctx, gateway.ListingSubmission{
			Title:       *title,
			Description: *description,
			EndsAt:      ends.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
		success.Printf("listing %s created (%s)\n", listing.Title, listing.ID)
		return nil

	case "venues":
		fs := flag.NewFlagSet("venues", flag.ExitOnError)
		query := fs.String("search", "", "filter by name")
		limit := fs.Int("limit", 10, "page size")
		offset := fs.Int("offset", 0, "page offset")
		fs.Parse(args)
		found, err := holidaze.BrowseVenues(ctx, gateway.ListParams{Limit: *limit, Offset: *offset}, *query)
		if err != nil {
			return err
		}
		for _, v := range found {
			printVenue(v)
		}
		return nil

	case "book":
		fs := flag.NewFlagSet("book", flag.ExitOnError)
		venueID := fs.String("venue", "", "venue ID")
		from := fs.String("from", "", "check-in date (YYYY-MM-DD)")
		to := fs.String("to", "", "check-out date (YYYY-MM-DD)")
		guests := fs.Int("guests", 1, "guest count")
		fs.Parse(args)

		dateFrom, err := time.Parse("2006-01-02", *from)
		if err != nil {
			return fmt.Errorf("book: bad -from date: %w", err)
		}
		dateTo, err := time.Parse("2006-01-02", *to)
		if err != nil {
			return fmt.Errorf("book: bad -to date: %w", err)
		}

		confirmed, err := holidaze.BookVenue(ctx, *venueID, booking.Request{
			DateFrom: dateFrom,
			DateTo:   dateTo,
			Guests:   *guests,
		})
		if err != nil {
			return err
		}
		success.Printf("booking %s confirmed: %s to %s, %d guests\n",
			confirmed.ID, confirmed.DateFrom.Format("2006-01-02"),
			confirmed.DateTo.Format("2006-01-02"), confirmed.Guests)
		return nil

	case "bookings":
		saved := holidaze.SavedBookings()
		if len(saved) == 0 {
			fmt.Println("no bookings found")
			return nil
		}
		for i, b := range saved {
			headline.Printf("booking %d\n", i+1)
			fmt.Printf("  venue: %s\n  from:  %s\n  to:    %s\n  guests: %d\n",
				b.VenueID, b.DateFrom.Format("2006-01-02"), b.DateTo.Format("2006-01-02"), b.Guests)
		}
		return nil

	case "create-venue":
		fs := flag.NewFlagSet("create-venue", flag.ExitOnError)
		sub := venueFlags(fs)
		fs.Parse(args)
		venue, err := holidaze.CreateVenue(ctx, *sub)
		if err != nil {
			return err
		}
		success.Printf("venue %s created (%s)\n", venue.Name, venue.ID)
		return nil

	case "update-venue":
		fs := flag.NewFlagSet("update-venue", flag.ExitOnError)
		venueID := fs.String("venue", "", "venue ID")
		sub := venueFlags(fs)
		fs.Parse(args)
		venue, err := holidaze.UpdateVenue(ctx, *venueID, *sub)
		if err != nil {
			return err
		}
		success.Printf("venue %s updated\n", venue.ID)
		return nil

	case "delete-venue":
		fs := flag.NewFlagSet("delete-venue", flag.ExitOnError)
		venueID := fs.String("venue", "", "venue ID")
		fs.Parse(args)
		if err := holidaze.DeleteVenue(ctx, *venueID); err != nil {
			return err
		}
		success.Printf("venue %s deleted\n", *venueID)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func venueFlags(fs *flag.FlagSet) *gateway.VenueSubmission {
	sub := &gateway.VenueSubmission{}
	fs.StringVar(&sub.Name, "name", "", "venue name")
	fs.StringVar(&sub.Description, "description", "", "venue description")
	fs.Float64Var(&sub.Price, "price", 0, "nightly price")
	fs.IntVar(&sub.MaxGuests, "max-guests", 1, "maximum guest count")
	return sub
}

func printListing(l models.Listing) {
	headline.Println(l.Title)
	fmt.Printf("  id: %s\n  ends: %s\n  bids: %d\n", l.ID, l.EndsAt.Format(time.RFC3339), l.Count.Bids)
}

func printVenue(v models.Venue) {
	headline.Println(v.Name)
	loc := v.Loc()
	fmt.Printf("  id: %s\n  price: %.2f/night  max guests: %d  rating: %.1f\n",
		v.ID, v.Price, v.MaxGuests, v.Rating)
	if loc.City != "" || loc.Country != "" {
		fmt.Printf("  location: %s, %s\n", loc.City, loc.Country)
	}
	meta := v.Amenities()
	fmt.Printf("  wifi: %t  parking: %t  breakfast: %t  pets: %t\n",
		meta.Wifi, meta.Parking, meta.Breakfast, meta.Pets)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: marketplace-client <command> [flags]

account:
  register -name NAME -email EMAIL -password PW
  login -email EMAIL -password PW
  logout | whoami | avatar -url URL

auctions:
  listings [-search Q] [-limit N] [-offset N] [-by-bids] [-oldest]
  bids -listing ID
  bid -listing ID -amount N
  create-listing -title TITLE [-description D] -ends YYYY-MM-DD

venues:
  venues [-search Q] [-limit N] [-offset N]
  book -venue ID -from YYYY-MM-DD -to YYYY-MM-DD -guests N
  bookings
  create-venue -name NAME [-description D] [-price N] [-max-guests N]
  update-venue -venue ID [venue flags]
  delete-venue -venue ID`)
}
