package reactor

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"manifold-sniper/internal/manifold"
	"manifold-sniper/internal/stream"
)

// Trader is the trading surface the reactor needs. Implemented by
// *manifold.Client.
type Trader interface {
	GetMarket(ctx context.Context, marketID string) (*manifold.Market, error)
	PlaceBet(ctx context.Context, marketID string, amount float64) (*manifold.Bet, error)
	SellShares(ctx context.Context, marketID string, shares *float64) (*manifold.Bet, error)
}

// Recorder persists reaction results. May be nil.
type Recorder interface {
	Record(ctx context.Context, res ReactionResult) error
}

// Reactor filters new-market events and runs the buy-then-sell reaction.
type Reactor struct {
	watchedID string
	trader    Trader
	recorder  Recorder
	logger    *slog.Logger
}

// New creates a Reactor watching the given creator identity. The
// identity is fixed at construction; there is no way to retarget a
// running reactor. recorder may be nil.
func New(watchedID string, trader Trader, recorder Recorder, logger *slog.Logger) *Reactor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Reactor{
		watchedID: watchedID,
		trader:    trader,
		recorder:  recorder,
		logger:    logger,
	}
}

// Run consumes events until the channel closes or ctx is cancelled.
// Events are handled strictly one at a time in arrival order; a slow
// reaction backpressures into the stream's event buffer.
func (r *Reactor) Run(ctx context.Context, events <-chan stream.MarketCreated) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			r.HandleEvent(ctx, ev)
		}
	}
}

// HandleEvent filters one event and, on a match, executes the reaction
// sequence. All failures are absorbed into the returned result.
func (r *Reactor) HandleEvent(ctx context.Context, ev stream.MarketCreated) ReactionResult {
	if ev.CreatorID != r.watchedID || ev.OutcomeType != "BINARY" {
		return ReactionResult{
			MarketID: ev.ID,
			Status:   StatusSkipped,
		}
	}

	res := ReactionResult{
		ID:        uuid.New(),
		MarketID:  ev.ID,
		Question:  ev.Question,
		URL:       ev.URL,
		StartedAt: time.Now(),
	}

	r.react(ctx, ev, &res)
	res.FinishedAt = time.Now()

	r.report(ctx, res)
	return res
}

// react runs the probe-buy-sell sequence, filling in res as it goes.
func (r *Reactor) react(ctx context.Context, ev stream.MarketCreated, res *ReactionResult) {
	market, err := r.trader.GetMarket(ctx, ev.ID)
	if err != nil {
		res.Status = StatusProbeFailed
		res.Err = err.Error()
		return
	}
	res.Prob = market.Prob
	res.Amount = SizeBet(market.Prob)

	if _, err := r.trader.PlaceBet(ctx, ev.ID, res.Amount); err != nil {
		// No position confirmed, so no sell is attempted.
		res.Status = StatusBuyFailed
		res.Err = err.Error()
		return
	}

	one := 1.0
	_, sellErr := r.trader.SellShares(ctx, ev.ID, &one)
	if sellErr == nil {
		res.Status = StatusUnwound
		return
	}
	r.logger.Warn("1-share sell failed, liquidating position",
		"market_id", ev.ID,
		"error", sellErr,
	)

	if _, err := r.trader.SellShares(ctx, ev.ID, nil); err != nil {
		res.Status = StatusSellFailed
		res.Err = err.Error()
		return
	}
	res.Status = StatusFallbackUnwound
}

// report emits the one-line reaction summary and persists it when a
// recorder is wired.
func (r *Reactor) report(ctx context.Context, res ReactionResult) {
	attrs := []any{
		"reaction_id", res.ID,
		"market_id", res.MarketID,
		"question", res.Question,
		"url", res.URL,
		"prob", res.Prob,
		"amount", res.Amount,
		"status", string(res.Status),
		"elapsed", res.FinishedAt.Sub(res.StartedAt),
	}

	switch res.Status {
	case StatusUnwound, StatusFallbackUnwound:
		r.logger.Info("reaction complete", attrs...)
	default:
		r.logger.Error("reaction failed", append(attrs, "error", res.Err)...)
	}

	if r.recorder == nil {
		return
	}
	if err := r.recorder.Record(ctx, res); err != nil {
		r.logger.Warn("failed to journal reaction",
			"reaction_id", res.ID,
			"error", err,
		)
	}
}
