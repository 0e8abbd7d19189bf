// Package tui is a terminal client for the names board, built on bubbletea.
//
// The model keeps no state of its own beyond the cursor, the viewport and the
// text input: every intent goes to the board controller and the screen is
// redrawn from a fresh board.View. Mutations run as tea.Cmds so the UI stays
// responsive while a request is in flight; background changes (resyncs,
// highlight expiry) arrive as RefreshMsg through a Refresher.
//
// Scrolling is measured in lines. The first visible row is reported to the
// controller as the scroll offset, which drives the "back to top" hint.
package tui
