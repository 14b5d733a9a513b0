package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Client represents the WebSocket connection to the realtime feed.
type Client interface {
	// Connect establishes the connection and sends the subscribe request.
	Connect(ctx context.Context) error

	// Close gracefully closes the connection.
	Close() error

	// Events returns decoded new-market broadcasts. The channel is
	// closed when the connection dies.
	Events() <-chan MarketCreated

	// Errors returns a channel of connection errors.
	Errors() <-chan error

	// IsConnected returns current connection state.
	IsConnected() bool
}

// client implements the Client interface.
type client struct {
	cfg    ClientConfig
	logger *slog.Logger

	conn *websocket.Conn

	// Output channels
	events chan MarketCreated
	errors chan error
	done   chan struct{}

	// Write serialization: subscribe and keepalive frames must never
	// interleave on the wire.
	writeMu sync.Mutex

	// Transaction counter shared by subscribe and ping frames, so txids
	// are unique for the connection's lifetime.
	txid atomic.Int64

	// State
	mu        sync.RWMutex
	connected bool
	closed    bool
}

// NewClient creates a new stream client.
func NewClient(cfg ClientConfig, logger *slog.Logger) Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &client{
		cfg:    cfg,
		logger: logger,
		events: make(chan MarketCreated, cfg.BufferSize),
		errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
}

// Connect establishes the connection, subscribes, and starts the read
// and keepalive loops.
func (c *client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrAlreadyClosed
	}
	c.mu.Unlock()

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	if err := c.subscribe(); err != nil {
		conn.Close()
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		return err
	}

	go c.readLoop()
	go c.keepaliveLoop()

	c.logger.Debug("stream connected", "url", c.cfg.URL, "topic", TopicNewContract)

	return nil
}

// Close gracefully closes the connection.
func (c *client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.connected = false
	c.mu.Unlock()

	// Signal goroutines to stop
	close(c.done)

	if c.conn != nil {
		c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		return c.conn.Close()
	}

	return nil
}

// Events returns the events channel.
func (c *client) Events() <-chan MarketCreated {
	return c.events
}

// Errors returns the errors channel.
func (c *client) Errors() <-chan error {
	return c.errors
}

// IsConnected returns the current connection state.
func (c *client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// subscribe sends the topic subscription request.
func (c *client) subscribe() error {
	frame := subscribeFrame{
		Type:   "subscribe",
		TxID:   c.txid.Add(1),
		Topics: []string{TopicNewContract},
	}
	return c.sendFrame(frame)
}

// sendFrame marshals and writes one frame under the write lock.
func (c *client) sendFrame(frame any) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	c.mu.RLock()
	if !c.connected {
		c.mu.RUnlock()
		return ErrNotConnected
	}
	c.mu.RUnlock()

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// readLoop reads frames, decodes broadcast envelopes, and forwards
// new-market events. Malformed frames are dropped.
func (c *client) readLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		close(c.events)
	}()

	for {
		select {
		case <-c.done:
			return
		default:
		}

		_, data, err := c.conn.ReadMessage()
		if err != nil {
			// Ignore errors after Close() is called
			select {
			case <-c.done:
				return
			default:
				select {
				case c.errors <- err:
				default:
				}
				return
			}
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			continue
		}

		if env.Type != "broadcast" || env.Topic != TopicNewContract {
			continue
		}

		var ev MarketCreated
		if err := json.Unmarshal(env.Data, &ev); err != nil {
			continue
		}

		select {
		case c.events <- ev:
		case <-c.done:
			return
		}
	}
}

// keepaliveLoop pings the server on a fixed cadence. A failed ping means
// the connection is gone; the loop ends quietly and lets the read loop
// surface the transport error.
func (c *client) keepaliveLoop() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			frame := pingFrame{
				Type: "ping",
				TxID: c.txid.Add(1),
			}
			if err := c.sendFrame(frame); err != nil {
				c.logger.Debug("keepalive ended", "error", err)
				return
			}
		}
	}
}
