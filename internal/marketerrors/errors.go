package marketerrors

import (
	"errors"
	"fmt"
)

// Local validation errors. These are resolved entirely client-side and
// never reach the network.
var (
	ErrInvalidAmount     = errors.New("bid amount must be a positive finite number")
	ErrBidTooLow         = errors.New("bid amount not above current highest")
	ErrInvalidRange      = errors.New("booking end date must be after start date")
	ErrGuestsOutOfBounds = errors.New("guest count outside venue capacity")
	ErrDateConflict      = errors.New("booking dates conflict with an existing booking")
)

// Session / cache errors
var (
	ErrNoSession = errors.New("no active session")
)

// Misc client errors
var (
	ErrInvalidEmail = errors.New("email address not accepted by the marketplace")
)

// GatewayError represents a non-2xx response from the remote marketplace.
// The gateway is authoritative: its rejections are surfaced verbatim and are
// never retried automatically.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway: status %d: %s", e.StatusCode, e.Message)
}

// IsGatewayError reports whether err wraps a GatewayError and returns it.
func IsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// IsValidation reports whether err is one of the local pre-submission
// validation errors.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidAmount,
		ErrBidTooLow,
		ErrInvalidRange,
		ErrGuestsOutOfBounds,
		ErrDateConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
