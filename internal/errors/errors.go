package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess          = 0 // Indicates successful execution.
	ExitErrorGeneric     = 1 // Indicates a generic error.
	ExitErrorWorkerFault = 2 // Indicates a worker fault aborted an estimation run.
	ExitErrorConfig      = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WorkerFaultError reports an unrecoverable failure inside one work unit.
// A single fault aborts the whole estimation run: no estimate is built from
// a strict subset of units.
type WorkerFaultError struct {
	// Chunk is the index of the failed work unit. The remainder unit uses
	// the index equal to the pool's chunk count.
	Chunk int
	// Start is the first unit index of the failed range.
	Start uint64
	// Count is the number of units in the failed range.
	Count uint64
	// Cause is the recovered panic value or error.
	Cause error
}

// Error returns a formatted message describing the fault.
func (e WorkerFaultError) Error() string {
	return fmt.Sprintf("worker fault in chunk %d [%d, %d): %v", e.Chunk, e.Start, e.Start+e.Count, e.Cause)
}

// Unwrap returns the underlying cause.
func (e WorkerFaultError) Unwrap() error { return e.Cause }

// EstimationError wraps a failed run of a named estimation method.
type EstimationError struct {
	// Method is the name of the estimation method that failed.
	Method string
	// Cause is the underlying error.
	Cause error
}

// Error returns the method name followed by the cause.
func (e EstimationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Method, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e EstimationError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var faultErr WorkerFaultError
	if errors.As(err, &faultErr) {
		return ExitErrorWorkerFault
	}
	var configErr ConfigError
	if errors.As(err, &configErr) {
		return ExitErrorConfig
	}
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}

// HandleEstimationError prints a failed run and returns the matching exit code.
// A nil error prints nothing and returns ExitSuccess.
func HandleEstimationError(err error, out io.Writer) int {
	code := ExitCodeFor(err)
	switch code {
	case ExitSuccess:
	case ExitErrorWorkerFault:
		fmt.Fprintf(out, "Status: Failure. The run was aborted by a worker fault: %v\n", err)
	case ExitErrorConfig:
		fmt.Fprintf(out, "Status: Invalid configuration: %v\n", err)
	default:
		fmt.Fprintf(out, "Status: Failure. %v\n", err)
	}
	return code
}
