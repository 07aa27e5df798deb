package view

// Package view turns the store's view model into a display representation
// that any front-end can draw: localized labels, rows, the empty-state
// message and stats. It also holds the edit-mode state machine shared by the
// desktop and terminal front-ends, and a lipgloss console renderer.
