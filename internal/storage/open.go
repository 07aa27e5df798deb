package storage

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/tasklist/internal/store"
)

// Backend names
const (
	BackendSQLite      = "sqlite"
	BackendPreferences = "preferences"
	BackendMemory      = "memory"
)

var (
	// ErrUnknownBackend is returned for backend names Open does not know
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrBackendUnavailable is returned when a backend needs something the
	// caller did not provide, e.g. preferences outside the desktop app
	ErrBackendUnavailable = errors.New("storage backend unavailable")
)

// Backend is a Storage that holds resources until closed
type Backend interface {
	store.Storage
	io.Closer
}

// Options selects and configures a backend
type Options struct {
	Backend     string
	Path        string           // database file for BackendSQLite
	Preferences fyne.Preferences // required for BackendPreferences
}

// Backends returns the known backend names
func Backends() []string {
	return []string{BackendSQLite, BackendPreferences, BackendMemory}
}

// Open creates the backend described by opts
func Open(opts Options) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case BackendSQLite, "":
		return OpenSQLite(opts.Path)
	case BackendPreferences:
		if opts.Preferences == nil {
			return nil, fmt.Errorf("%w: %s requires the desktop app", ErrBackendUnavailable, BackendPreferences)
		}
		return NewPreferences(opts.Preferences), nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
