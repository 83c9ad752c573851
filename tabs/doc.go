// Package tabs holds the demo's footer composition variants. Each tab
// shows one way to pair the key-hint footer with a status label: a
// single-line fractional grid, a taller static section, and the default
// stacked bars driven by the reactive status value.
package tabs
