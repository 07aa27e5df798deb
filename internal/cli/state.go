package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ytget/tasklist/internal/config"
	"github.com/ytget/tasklist/internal/storage"
	"github.com/ytget/tasklist/internal/store"
	"github.com/ytget/tasklist/internal/view"
)

// state is resolved once per invocation by the root command
type state struct {
	cfg      *config.Config
	logger   *slog.Logger
	language string // --lang, empty when not given
}

type stateKey struct{}

func withState(ctx context.Context, st *state) context.Context {
	return context.WithValue(ctx, stateKey{}, st)
}

func stateFrom(ctx context.Context) *state {
	if st, ok := ctx.Value(stateKey{}).(*state); ok {
		return st
	}
	return &state{
		cfg:    config.Default(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// newLogger builds the process logger. Every line carries the session id.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("session", uuid.NewString())
}

// localization returns the UI texts for this invocation
func (st *state) localization() *view.Localization {
	loc := view.NewLocalization()
	if st.language != "" {
		loc.SetLanguage(st.language)
	} else {
		loc.SetLanguage(st.cfg.Language)
	}
	return loc
}

// openStore opens the configured backend and loads the store from it
func (st *state) openStore() (*store.Store, io.Closer, error) {
	backend, err := storage.Open(st.cfg.StorageOptions())
	if err != nil {
		if errors.Is(err, storage.ErrUnknownBackend) || errors.Is(err, storage.ErrBackendUnavailable) {
			return nil, nil, configError(err)
		}
		return nil, nil, storageError(fmt.Errorf("open storage: %w", err))
	}
	st.logger.Debug("storage opened", "backend", st.cfg.Storage.Backend, "path", st.cfg.Storage.Path)
	return store.New(backend, store.WithLogger(st.logger)), backend, nil
}

// checkSaved turns a failed write into a storage error
func checkSaved(s *store.Store) error {
	if err := s.SaveErr(); err != nil {
		return storageError(fmt.Errorf("save tasks: %w", err))
	}
	return nil
}
