package manifold

import (
	"log/slog"
	"net/http"
	"time"
)

// Client provides access to the Manifold REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger

	// Per-operation deadlines. Reads carry a shorter deadline than
	// trades, which the backend may hold open while matching.
	userTimeout   time.Duration
	marketTimeout time.Duration
	tradeTimeout  time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client.
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		httpClient:    &http.Client{},
		logger:        slog.Default(),
		userTimeout:   20 * time.Second,
		marketTimeout: 15 * time.Second,
		tradeTimeout:  30 * time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeouts sets the per-operation deadlines.
func WithTimeouts(user, market, trade time.Duration) ClientOption {
	return func(c *Client) {
		if user > 0 {
			c.userTimeout = user
		}
		if market > 0 {
			c.marketTimeout = market
		}
		if trade > 0 {
			c.tradeTimeout = trade
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
