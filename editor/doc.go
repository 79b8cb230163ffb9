// Package editor provides the rextest Bubble Tea component: two editable
// fields (a single-line pattern and a multi-line body) and a matches panel
// that is recomputed as the user types.
//
// State is the key-event state machine and can be driven without a terminal.
// Model wraps it with layout, rendering, mouse handling and key translation.
package editor
