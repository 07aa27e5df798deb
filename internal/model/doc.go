package model

// Package model defines domain data structures used across the app: tasks,
// list filters, counters and the view model handed to renderers. Structures
// carry JSON tags matching the persisted record layout.
