package config

import "time"

// SniperConfig is the root configuration for a sniper instance.
type SniperConfig struct {
	Watch    WatchConfig  `yaml:"watch"`
	API      APIConfig    `yaml:"api"`
	Stream   StreamConfig `yaml:"stream"`
	Database *DBConfig    `yaml:"database"` // optional; enables the reaction journal
}

// WatchConfig identifies the user whose new markets trigger reactions.
type WatchConfig struct {
	Handle string `yaml:"handle"`
}

// APIConfig holds Manifold REST API settings.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Key     string `yaml:"key"` // bearer token, sent as "Key <token>" on bet/sell only

	UserTimeout   time.Duration `yaml:"user_timeout"`
	MarketTimeout time.Duration `yaml:"market_timeout"`
	TradeTimeout  time.Duration `yaml:"trade_timeout"`
}

// StreamConfig holds websocket stream settings.
type StreamConfig struct {
	URL          string        `yaml:"url"`
	PingInterval time.Duration `yaml:"ping_interval"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	BufferSize   int           `yaml:"buffer_size"`
}

// DBConfig holds the Postgres connection for the reaction journal.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}
