package platform

// Package platform contains OS integration helpers: XDG data and config
// locations, directory creation, and revealing files in the file manager.
