package cli

import (
	"errors"

	"github.com/ytget/tasklist/internal/exitcode"
)

// exitError carries the exit code an error should produce
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error {
	return &exitError{code: exitcode.UserError, err: err}
}

func configError(err error) error {
	return &exitError{code: exitcode.ConfigError, err: err}
}

func storageError(err error) error {
	return &exitError{code: exitcode.StorageError, err: err}
}

// ExitCode maps err to a process exit code. Errors without a code, such as
// cobra's flag and argument errors, are user errors.
func ExitCode(err error) int {
	if err == nil {
		return exitcode.Success
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitcode.UserError
}
