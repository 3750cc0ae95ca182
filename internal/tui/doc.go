// Package tui implements the terminal UI of the owner client.
//
// The UI is a single Bubble Tea state machine: one root model owns the
// current screen plus the per-screen sub-models, and every side effect
// (server calls, clipboard, timers) runs as a [tea.Cmd] that reports back
// with a typed message.
package tui
