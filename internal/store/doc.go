package store

// Package store owns the authoritative task collection. Every mutation is
// written through to a key-value Storage before subscribers are notified, and
// invalid input (blank text, unknown ids) degrades to a no-op instead of an
// error.
