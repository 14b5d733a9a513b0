// Package stream implements the Manifold realtime feed client.
//
// The client:
//   - Maintains a single WebSocket connection
//   - Subscribes to the global/new-contract topic on connect
//   - Sends a ping frame every 30 seconds with an increasing txid
//   - Decodes broadcast envelopes into MarketCreated events
//
// Malformed frames and unknown envelope kinds are dropped. There is no
// automatic reconnect: when the connection dies the run loop ends and
// the error surfaces on Errors().
package stream
