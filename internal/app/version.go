package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build information, set with -ldflags "-X github.com/agbru/primecalc/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args ask for the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the build information to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "primecalc %s\n", Version)
	fmt.Fprintf(out, "  commit:  %s\n", Commit)
	fmt.Fprintf(out, "  built:   %s\n", BuildDate)
	fmt.Fprintf(out, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
