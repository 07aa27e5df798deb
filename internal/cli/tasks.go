package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/tasklist/internal/model"
	"github.com/ytget/tasklist/internal/view"
)

// ErrEmptyText is returned when add or edit gets nothing but whitespace
var ErrEmptyText = errors.New("task text is empty")

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := stateFrom(cmd.Context())
			s, closer, err := st.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			task, ok := s.Add(strings.Join(args, " "))
			if !ok {
				return userError(ErrEmptyText)
			}
			if err := checkSaved(s); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %d: %s\n", s.Len(), task.Text)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var filter string
	var showIDs bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
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

			renderer := view.NewConsoleRenderer()
			renderer.ShowIDs = showIDs
			d := view.Render(s.View(f), st.localization())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(d, -1))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(model.FilterAll), "Filter: all, active or completed")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "Show task ids")
	return cmd
}

func newToggleCmd() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:     "toggle <number>",
		Aliases: []string{"done"},
		Short:   "Toggle a task between active and completed",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseTaskRef(args, id)
			if err != nil {
				return userError(err)
			}

			st := stateFrom(cmd.Context())
			s, closer, err := st.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			task, pos, err := ref.resolve(s)
			if err != nil {
				return userError(err)
			}
			s.Toggle(task.ID)
			if err := checkSaved(s); err != nil {
				return err
			}

			verb := "Completed"
			if task.Completed {
				verb = "Reopened"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d: %s\n", verb, pos, task.Text)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "Task id instead of number")
	return cmd
}

func newEditCmd() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "edit <number> <text...>",
		Short: "Replace the text of an active task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refArgs, textArgs := args[:1], args[1:]
			if id != 0 {
				refArgs, textArgs = nil, args
			}
			ref, err := parseTaskRef(refArgs, id)
			if err != nil {
				return userError(err)
			}
			text, ok := model.NormalizeText(strings.Join(textArgs, " "))
			if !ok {
				return userError(ErrEmptyText)
			}

			st := stateFrom(cmd.Context())
			s, closer, err := st.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			task, pos, err := ref.resolve(s)
			if err != nil {
				return userError(err)
			}
			if !task.IsEditable() {
				return userError(fmt.Errorf("task %d is completed", pos))
			}

			if !s.Edit(task.ID, text) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unchanged %d: %s\n", pos, task.Text)
				return nil
			}
			if err := checkSaved(s); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Edited %d: %s\n", pos, text)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "Task id instead of number")
	return cmd
}

func newRmCmd() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:     "rm <number>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseTaskRef(args, id)
			if err != nil {
				return userError(err)
			}

			st := stateFrom(cmd.Context())
			s, closer, err := st.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			task, pos, err := ref.resolve(s)
			if err != nil {
				return userError(err)
			}
			s.Delete(task.ID)
			if err := checkSaved(s); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d: %s\n", pos, task.Text)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "Task id instead of number")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := stateFrom(cmd.Context())
			s, closer, err := st.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			d := view.Render(s.View(model.FilterAll), st.localization())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), d.TotalLabel)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), d.CompletedLabel)
			return nil
		},
	}
}
