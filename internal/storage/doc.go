package storage

// Package storage provides the key-value backends the task store persists
// through: Fyne preferences (the desktop app's local storage), a SQLite
// key/value table shared by every front-end, and an in-memory map.
