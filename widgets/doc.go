// Package widgets contains dumb render primitives for footer composition.
//
// Allowed here:
// - stateless drawing/composition helpers (labels, stacks, popup overlay)
// - the display element registry (ID -> label lookup)
//
// Not allowed here:
// - key handling, app state transitions, scope logic, or status policy
package widgets

// Widget renders into a width x height cell region and returns the lines
// joined by newlines. Implementations must tolerate zero or negative sizes.
type Widget interface {
	Render(width, height int) string
}
