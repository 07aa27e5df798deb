package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/tasklist/internal/config"
)

// rootFlags are the persistent flags shared by all commands
type rootFlags struct {
	configPath string
	dataPath   string
	backend    string
	language   string
	logLevel   string
}

// NewRootCmd builds the command tree. Running it without a subcommand starts
// the desktop app.
func NewRootCmd(version string) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "tasklist",
		Short:         "A small personal task list",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			st, err := resolveState(cmd, flags)
			if err != nil {
				return err
			}
			cmd.SetContext(withState(cmd.Context(), st))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, version)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/tasklist/config.yaml)")
	pf.StringVar(&flags.dataPath, "data", "", "Task database file (overrides storage.path)")
	pf.StringVar(&flags.backend, "backend", "", "Storage backend: sqlite, preferences or memory (overrides storage.backend)")
	pf.StringVar(&flags.language, "lang", "", "Interface language: en, ja, ru or pt")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides log.level)")

	cmd.AddCommand(newGUICmd(version))
	cmd.AddCommand(newTUICmd())

	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newToggleCmd())
	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newRmCmd())
	cmd.AddCommand(newStatsCmd())

	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd(version))

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.SetVersionTemplate("{{.Version}}\n")
	if version != "" {
		cmd.Version = version
	} else {
		cmd.Version = "dev"
	}

	return cmd
}

// resolveState loads the config file and applies flag overrides
func resolveState(cmd *cobra.Command, flags rootFlags) (*state, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, configError(err)
	}

	if flags.dataPath != "" {
		cfg.Storage.Path = flags.dataPath
	}
	if flags.backend != "" {
		cfg.Storage.Backend = strings.ToLower(flags.backend)
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, configError(err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, configError(err)
	}

	st := &state{
		cfg:      cfg,
		logger:   newLogger(cmd.ErrOrStderr(), level),
		language: flags.language,
	}
	st.logger.Debug("config resolved", "file", cfg.Path, "backend", cfg.Storage.Backend, "command", cmd.Name())
	return st, nil
}
