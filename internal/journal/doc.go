// Package journal persists reaction results to Postgres.
//
// The journal is an append-only audit record, one row per reaction
// attempt. The bot never reads it back; process state stays in memory
// and is lost on restart by design. The journal is optional: when no
// database is configured the reactor runs with a nil recorder.
package journal
