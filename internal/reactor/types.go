package reactor

import (
	"time"

	"github.com/google/uuid"
)

// Status classifies the outcome of one reaction.
type Status string

const (
	// StatusSkipped: event did not match the watch predicate.
	StatusSkipped Status = "skipped"

	// StatusUnwound: bought and sold 1 share as planned.
	StatusUnwound Status = "unwound"

	// StatusFallbackUnwound: 1-share sell failed, full liquidation worked.
	StatusFallbackUnwound Status = "fallback_unwound"

	// StatusProbeFailed: could not read the probability; nothing traded.
	StatusProbeFailed Status = "probe_failed"

	// StatusBuyFailed: bet rejected; no sell attempted.
	StatusBuyFailed Status = "buy_failed"

	// StatusSellFailed: bought, but both sell attempts failed. The
	// position is left open.
	StatusSellFailed Status = "sell_failed"
)

// ReactionResult summarizes one filter-and-react cycle.
type ReactionResult struct {
	ID       uuid.UUID
	MarketID string
	Question string
	URL      string

	Prob   float64 // observed just before buying
	Amount float64 // computed buy amount

	Status Status
	Err    string // failure detail, empty on success

	StartedAt  time.Time
	FinishedAt time.Time
}

// Traded reports whether the reaction placed a buy.
func (r ReactionResult) Traded() bool {
	switch r.Status {
	case StatusUnwound, StatusFallbackUnwound, StatusSellFailed:
		return true
	}
	return false
}
