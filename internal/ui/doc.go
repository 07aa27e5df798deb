package ui

// Package ui contains the Fyne-based desktop user interface for the task list.
// It wires user interactions to the task store and redraws the list from the
// store's view model after every operation. All UI strings are localized via
// view.Localization.
