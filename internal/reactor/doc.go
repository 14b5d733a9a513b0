// Package reactor implements the event filter and trade reaction.
//
// For each new-market event, the reactor checks that the creator is the
// watched user and the market is binary, then runs the reaction:
// read the fresh probability, buy a small YES stake sized from it, and
// unwind by selling 1 share (falling back to full liquidation).
//
// Failures inside a reaction are reported, never fatal: the watcher
// keeps running.
package reactor
