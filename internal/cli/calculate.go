package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/primecalc/internal/config"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/ui"
)

// PrintExecutionConfig displays the parameters of a search run.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	switch cfg.Mode {
	case config.ModeRandom:
		fmt.Fprintf(out, "Searching primes near random %s%d-byte%s candidates with a timeout of %s%s%s.\n",
			ui.ColorMagenta(), cfg.Bytes, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	case config.ModeProbable:
		fmt.Fprintf(out, "Searching a probable prime of %s%d digits%s, %s%s%s of trial division per candidate, timeout %s%s%s.\n",
			ui.ColorMagenta(), cfg.Digits, ui.ColorReset(), ui.ColorYellow(), cfg.TrialLimit(), ui.ColorReset(),
			ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	default:
		fmt.Fprintf(out, "Searching the next prime with a timeout of %s%s%s.\n",
			ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Engine layout: %s%s%s, cancellation checked every %s%d%s divisions.\n",
		ui.ColorCyan(), cfg.Layout(), ui.ColorReset(), ui.ColorCyan(), cfg.SampleInterval, ui.ColorReset())
}

// PrintExecutionMode displays the searches about to run.
//
// Parameters:
//   - searches: The searches that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(searches []orchestration.Searcher, out io.Writer) {
	var modeDesc string
	if len(searches) > 1 {
		modeDesc = fmt.Sprintf("Concurrent search from %s%d%s random starting points", ui.ColorGreen(), len(searches), ui.ColorReset())
	} else if len(searches) == 1 {
		start, _ := FormatValue(searches[0].StartValue(), false)
		modeDesc = fmt.Sprintf("Single search from %s%s%s", ui.ColorGreen(), start, ui.ColorReset())
	} else {
		modeDesc = "No search"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
