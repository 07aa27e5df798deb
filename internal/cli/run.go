package cli

import (
	"context"
	"fmt"
	"io"
)

// Run executes the command line and returns the process exit code. Errors are
// printed to errOut as "error: <message>".
func Run(ctx context.Context, version string, args []string, out, errOut io.Writer) int {
	root := NewRootCmd(version)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return ExitCode(err)
}
