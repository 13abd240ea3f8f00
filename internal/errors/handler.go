package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the ANSI sequences used to highlight error output.
// A nil provider disables colors.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

type noColors struct{}

func (noColors) Red() string    { return "" }
func (noColors) Yellow() string { return "" }
func (noColors) Reset() string  { return "" }

// HandleSearchError reports a search failure on out and maps it to an exit
// code. A nil error yields ExitSuccess and prints nothing.
//
// Parameters:
//   - err: The error returned by the search, or nil.
//   - duration: Time spent before the failure; zero omits it from the message.
//   - out: Destination for the status line.
//   - colors: Color sequences, or nil for plain output.
//
// Returns:
//   - int: The exit code for the process.
func HandleSearchError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = noColors{}
	}
	after := ""
	if duration > 0 {
		after = fmt.Sprintf(" after %s", duration)
	}

	var (
		timeoutErr  TimeoutError
		configErr   ConfigError
		usageErr    UsageError
		notFoundErr NotFoundError
	)
	switch {
	case errors.As(err, &timeoutErr) || errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sStatus: Failure (Timeout). The time limit was exceeded%s.%s\n", colors.Red(), after, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled by user%s.%s\n", colors.Yellow(), after, colors.Reset())
		return ExitErrorCanceled
	case errors.As(err, &usageErr):
		fmt.Fprintln(out, usageErr.Error())
		return ExitErrorGeneric
	case errors.As(err, &configErr):
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	case errors.As(err, &notFoundErr):
		fmt.Fprintf(out, "%sStatus: No prime found. %v%s.%s\n", colors.Yellow(), err, after, colors.Reset())
		return ExitErrorNotFound
	default:
		fmt.Fprintf(out, "%sStatus: Failure. An unexpected error occurred: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
