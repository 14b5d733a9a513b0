package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL = "https://api.manifold.markets"
	DefaultWSURL   = "wss://api.manifold.markets/ws"

	DefaultUserTimeout   = 20 * time.Second
	DefaultMarketTimeout = 15 * time.Second
	DefaultTradeTimeout  = 30 * time.Second

	DefaultPingInterval = 30 * time.Second
	DefaultWriteTimeout = 5 * time.Second
	DefaultBufferSize   = 256

	DefaultDBPort    = 5432
	DefaultDBSSLMode = "prefer"
	DefaultMaxConns  = 4
	DefaultMinConns  = 1
)

// ApplyDefaults fills in zero-valued optional fields.
func (c *SniperConfig) ApplyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.UserTimeout == 0 {
		c.API.UserTimeout = DefaultUserTimeout
	}
	if c.API.MarketTimeout == 0 {
		c.API.MarketTimeout = DefaultMarketTimeout
	}
	if c.API.TradeTimeout == 0 {
		c.API.TradeTimeout = DefaultTradeTimeout
	}

	// Stream defaults
	if c.Stream.URL == "" {
		c.Stream.URL = DefaultWSURL
	}
	if c.Stream.PingInterval == 0 {
		c.Stream.PingInterval = DefaultPingInterval
	}
	if c.Stream.WriteTimeout == 0 {
		c.Stream.WriteTimeout = DefaultWriteTimeout
	}
	if c.Stream.BufferSize == 0 {
		c.Stream.BufferSize = DefaultBufferSize
	}

	// Database defaults (journal is optional)
	if c.Database != nil {
		if c.Database.Port == 0 {
			c.Database.Port = DefaultDBPort
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = DefaultDBSSLMode
		}
		if c.Database.MaxConns == 0 {
			c.Database.MaxConns = DefaultMaxConns
		}
		if c.Database.MinConns == 0 {
			c.Database.MinConns = DefaultMinConns
		}
	}
}
