// Package command pairs actions with availability predicates in the shape
// UI bindings expect, and registers them for lookup.
//
// Allowed here:
// - command contracts, availability signaling, registry scope/search logic
//
// Not allowed here:
// - rendering, key handling, or application state
package command
