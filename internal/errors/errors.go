package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit codes.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1 // usage errors, malformed operands, I/O failures
	ExitErrorTimeout  = 2
	ExitErrorNotFound = 3 // candidate budget spent without a prime
	ExitErrorConfig   = 4
	ExitErrorCanceled = 130 // SIGINT
)

// ConfigError reports a flag or environment value that cannot be used.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError formats a ConfigError.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// UsageError reports a command line that names no usable mode or misses a
// required argument. The caller prints Usage and exits with ExitErrorGeneric.
type UsageError struct {
	// Usage is the one-line synopsis for the requested mode.
	Usage string
}

// Error returns the usage line.
func (e UsageError) Error() string { return "Usage: " + e.Usage }

// SearchError wraps a failure of a prime search together with the candidate
// that was under test when it happened.
type SearchError struct {
	// Candidate is the decimal rendering of the candidate, if known.
	Candidate string
	// Cause is the underlying error that stopped the search.
	Cause error
}

// Error returns the cause message, prefixed with the candidate when known.
func (e SearchError) Error() string {
	if e.Candidate == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("candidate %s: %v", e.Candidate, e.Cause)
}

func (e SearchError) Unwrap() error { return e.Cause }

// TimeoutError reports an interactive command that outlived its budget.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError reports an operand that does not parse or does not fit
// the selected layout.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// NotFoundError reports a search that exhausted its candidates or its time
// budget without producing a prime.
type NotFoundError struct {
	// Tried is the number of candidates examined.
	Tried uint64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no prime found after %d candidates", e.Tried)
}

// WrapError prefixes err with a formatted context message. It returns nil
// for a nil err.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err stems from context cancellation or a
// deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
