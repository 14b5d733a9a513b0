package manifold

import (
	"context"
	"fmt"
	"net/url"
)

// GetMarket fetches a single market by ID. The returned Prob is read
// fresh so callers never size a trade from a stale probability.
func (c *Client) GetMarket(ctx context.Context, marketID string) (*Market, error) {
	ctx, cancel := context.WithTimeout(ctx, c.marketTimeout)
	defer cancel()

	var market Market
	if err := c.get(ctx, "/v0/market/"+url.PathEscape(marketID), false, &market); err != nil {
		return nil, fmt.Errorf("get market %s: %w", marketID, err)
	}

	return &market, nil
}
