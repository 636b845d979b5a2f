// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, lists, the
//   popup overlay compositor)
//
// Not allowed here:
// - key handling, app state transitions, or dialog policy
package widgets
