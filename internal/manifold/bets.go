package manifold

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// PlaceBet buys YES on a market for the given mana amount. The amount is
// rounded to 4 decimal places before submission; the backend rejects
// finer precision.
func (c *Client) PlaceBet(ctx context.Context, marketID string, amount float64) (*Bet, error) {
	ctx, cancel := context.WithTimeout(ctx, c.tradeTimeout)
	defer cancel()

	rounded, _ := decimal.NewFromFloat(amount).Round(4).Float64()

	req := betRequest{
		Amount:     rounded,
		ContractID: marketID,
		Outcome:    "YES",
	}

	var bet Bet
	if err := c.post(ctx, "/v0/bet", req, &bet); err != nil {
		return nil, fmt.Errorf("place bet on %s: %w", marketID, err)
	}

	c.logger.Debug("bet placed",
		"market_id", marketID,
		"amount", rounded,
		"shares", bet.Shares,
	)

	return &bet, nil
}

// SellShares sells YES shares on a market. A nil shares pointer
// liquidates the entire YES position.
func (c *Client) SellShares(ctx context.Context, marketID string, shares *float64) (*Bet, error) {
	ctx, cancel := context.WithTimeout(ctx, c.tradeTimeout)
	defer cancel()

	req := sellRequest{
		Outcome: "YES",
		Shares:  shares,
	}

	var bet Bet
	if err := c.post(ctx, "/v0/market/"+url.PathEscape(marketID)+"/sell", req, &bet); err != nil {
		return nil, fmt.Errorf("sell shares on %s: %w", marketID, err)
	}

	return &bet, nil
}
