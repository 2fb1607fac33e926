package bidding

import (
	"fmt"
	"math"
	"sort"

	"marketplace-client/internal/marketerrors"
	"marketplace-client/internal/models"
)

// Result is the outcome of a locally accepted bid: the predicted new highest
// amount plus the full bid history in display order.
type Result struct {
	NewHighest float64
	History    []models.Bid
}

// Evaluate decides whether a proposed bid is locally admissible against the
// current highest bid. currentHighest is nil when the listing has no bids yet.
//
// The verdict is advisory: the gateway is the authoritative arbiter, and a
// concurrent higher bid from another user may still cause it to reject a bid
// accepted here.
func Evaluate(currentHighest *models.Bid, proposed float64) error {
	if proposed <= 0 || math.IsInf(proposed, 0) || math.IsNaN(proposed) {
		return fmt.Errorf("evaluate: %w - got %v", marketerrors.ErrInvalidAmount, proposed)
	}
	if currentHighest != nil && proposed <= currentHighest.Amount {
		return fmt.Errorf("evaluate: %w - current highest is %.2f", marketerrors.ErrBidTooLow, currentHighest.Amount)
	}
	return nil
}

// EvaluateHistory runs Evaluate against the highest bid in history and, on
// acceptance, returns the predicted new highest together with the ranked
// history. The input slice is never mutated.
func EvaluateHistory(history []models.Bid, proposed float64) (Result, error) {
	if err := Evaluate(Highest(history), proposed); err != nil {
		return Result{}, err
	}
	return Result{
		NewHighest: proposed,
		History:    Rank(history),
	}, nil
}

// Highest returns the bid with the greatest amount, or nil when there are no
// bids. Ties go to the earlier bid, since a later equal bid could never have
// been accepted.
func Highest(bids []models.Bid) *models.Bid {
	var winning *models.Bid
	for i := range bids {
		b := &bids[i]
		if winning == nil || b.Amount > winning.Amount ||
			(b.Amount == winning.Amount && b.Created.Before(winning.Created)) {
			winning = b
		}
	}
	if winning == nil {
		return nil
	}
	w := *winning
	return &w
}

// Rank returns a copy of the bid history ordered ascending by creation time,
// the order the bids were accepted in.
func Rank(bids []models.Bid) []models.Bid {
	ranked := append([]models.Bid(nil), bids...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Created.Before(ranked[j].Created)
	})
	return ranked
}
