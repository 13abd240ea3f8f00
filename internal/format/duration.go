// Package format renders durations, progress and numbers for terminal output.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders d in µs below a millisecond, in ms below a
// second and with time.Duration's own notation above.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}
