// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes returned by tasklist.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task reference, empty text).
	UserError = 1

	// ConfigError indicates an unreadable or invalid configuration.
	ConfigError = 2

	// StorageError indicates the task data could not be opened or saved.
	StorageError = 3
)
