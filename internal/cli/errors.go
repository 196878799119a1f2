package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/trench/internal/validation"
)

// CodedError carries the process exit code for err
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// UsageError wraps err so the process exits with ExitUsage
func UsageError(err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: ExitUsage, Err: err}
}

// UsageErrorf formats a usage error
func UsageErrorf(format string, args ...any) error {
	return UsageError(fmt.Errorf(format, args...))
}

// GetExitCode maps an error returned by a command to a process exit code
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}

	if errors.Is(err, validation.ErrInvalid) {
		return ExitValidation
	}

	return ExitError
}

// ErrorCode returns the machine-readable code used in JSON error output
func ErrorCode(err error) string {
	switch GetExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}
