package stream

import (
	"encoding/json"
	"errors"
	"time"
)

// TopicNewContract is the broadcast topic for newly created markets.
const TopicNewContract = "global/new-contract"

// Errors
var (
	ErrNotConnected  = errors.New("not connected")
	ErrAlreadyClosed = errors.New("already closed")
)

// Envelope is the outer shape of every inbound frame. Anything that is
// not a broadcast on a subscribed topic is discarded.
type Envelope struct {
	Type  string          `json:"type"`
	Topic string          `json:"topic"`
	TxID  int64           `json:"txid,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// subscribeFrame is the outbound subscription request.
type subscribeFrame struct {
	Type   string   `json:"type"`
	TxID   int64    `json:"txid"`
	Topics []string `json:"topics"`
}

// pingFrame is the outbound keepalive.
type pingFrame struct {
	Type string `json:"type"`
	TxID int64  `json:"txid"`
}

// MarketCreated is the payload of a new-contract broadcast.
type MarketCreated struct {
	ID          string `json:"id"`
	CreatorID   string `json:"creatorId"`
	OutcomeType string `json:"outcomeType"` // "BINARY", "MULTIPLE_CHOICE", ...
	Question    string `json:"question"`
	URL         string `json:"url"`
}

// ClientConfig configures the stream client.
type ClientConfig struct {
	URL          string        // WebSocket URL (e.g., wss://api.manifold.markets/ws)
	PingInterval time.Duration // Keepalive cadence
	WriteTimeout time.Duration // Write deadline for outbound frames
	BufferSize   int           // Event channel buffer size
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		PingInterval: 30 * time.Second,
		WriteTimeout: 5 * time.Second,
		BufferSize:   256,
	}
}
