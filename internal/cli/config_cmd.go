package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/tasklist/internal/config"
	"github.com/ytget/tasklist/internal/platform"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		// A broken config file must not prevent replacing it
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			if path == "" {
				path = platform.DefaultConfigPath()
			}
			if err := config.WriteDefault(path, force); err != nil {
				return configError(err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := stateFrom(cmd.Context())
			out, err := st.cfg.YAML()
			if err != nil {
				return err
			}
			if st.cfg.Path != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", st.cfg.Path)
			}
			_, _ = cmd.OutOrStdout().Write(out)
			return nil
		},
	}
}
