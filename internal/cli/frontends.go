package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ytget/tasklist/internal/model"
	"github.com/ytget/tasklist/internal/storage"
	"github.com/ytget/tasklist/internal/tui"
	"github.com/ytget/tasklist/internal/ui"
)

// Front-end launchers, replaced in tests
var (
	launchGUI = ui.Run
	launchTUI = tui.Run
)

func newGUICmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop app (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, version)
		},
	}
}

func runGUI(cmd *cobra.Command, version string) error {
	st := stateFrom(cmd.Context())
	st.logger.Info("starting desktop app", "version", version)

	err := launchGUI(ui.AppConfig{
		Config:   st.cfg,
		Logger:   st.logger,
		Version:  version,
		Language: st.language,
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrUnknownBackend), errors.Is(err, storage.ErrBackendUnavailable):
		return configError(err)
	default:
		return storageError(err)
	}
}

func newTUICmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := model.ParseFilter(filter)
			if err != nil {
				return userError(err)
			}

			st := stateFrom(cmd.Context())
			s, closer, err := st.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			m := tui.New(tui.Options{
				Store:        s,
				Localization: st.localization(),
				Logger:       st.logger,
				Filter:       f,
			})
			st.logger.Info("starting terminal interface", "tasks", s.Len())

			err = launchTUI(cmd.Context(), m,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}
			return checkSaved(s)
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(model.FilterAll), "Initial filter: all, active or completed")
	return cmd
}
