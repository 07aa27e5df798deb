package ui

import (
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/tasklist/internal/config"
	"github.com/ytget/tasklist/internal/storage"
	"github.com/ytget/tasklist/internal/store"
)

// AppConfig describes how the desktop app is started
type AppConfig struct {
	Config   *config.Config
	Logger   *slog.Logger
	Version  string
	Language string // overrides preferences and file config when set
}

// App is the desktop application: one window over one store
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	root    *RootUI
	backend storage.Backend
	logger  *slog.Logger
}

// Run starts the desktop app and blocks until its window is closed
func Run(cfg AppConfig) error {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(NewCompactTheme())
	a.SetIcon(LoadLogoResource())

	application, err := NewApp(a, cfg)
	if err != nil {
		return err
	}
	return application.ShowAndRun()
}

// NewApp opens storage and builds the main window on a
func NewApp(a fyne.App, cfg AppConfig) (*App, error) {
	if cfg.Config == nil {
		cfg.Config = config.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	opts := cfg.Config.StorageOptions()
	opts.Preferences = a.Preferences()
	backend, err := storage.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	dataPath := ""
	if sqlite, ok := backend.(*storage.SQLite); ok {
		dataPath = sqlite.Path()
	}

	settings := config.NewSettings(a)
	s := store.New(backend, store.WithLogger(logger))

	window := a.NewWindow(AppName)
	window.Resize(fyne.NewSize(settings.GetWindowSize()))
	window.SetIcon(LoadLogoResource())

	root := NewRootUI(window, Options{
		Store:            s,
		Settings:         settings,
		Logger:           logger,
		Language:         cfg.Language,
		FallbackLanguage: cfg.Config.Language,
		DataPath:         dataPath,
	})

	application := &App{
		fyneApp: a,
		window:  window,
		root:    root,
		backend: backend,
		logger:  logger,
	}
	window.SetOnClosed(application.onClosed)

	logger.Info("desktop app ready", "version", cfg.Version, "backend", opts.Backend, "tasks", s.Len())
	return application, nil
}

// Root returns the main UI
func (a *App) Root() *RootUI {
	return a.root
}

// Window returns the main window
func (a *App) Window() fyne.Window {
	return a.window
}

// ShowAndRun shows the window and runs the event loop
func (a *App) ShowAndRun() error {
	a.window.ShowAndRun()
	return a.Close()
}

// Close releases the storage backend
func (a *App) Close() error {
	if a.backend == nil {
		return nil
	}
	err := a.backend.Close()
	a.backend = nil
	if err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}

func (a *App) onClosed() {
	size := a.window.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		config.NewSettings(a.fyneApp).SetWindowSize(size.Width, size.Height)
	}
}
