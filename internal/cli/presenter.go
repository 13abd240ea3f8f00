package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/markkurossi/tabulate"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/progress"
	"github.com/agbru/primecalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing searches.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numWorkers, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for the
// command-line interface.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays one row per search: its start value, the
// prime found, the work done and the outcome.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.SearchResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Search Summary ---\n")
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Search").SetAlign(tabulate.ML)
	tab.Header("Start").SetAlign(tabulate.MR)
	tab.Header("Prime").SetAlign(tabulate.MR)
	tab.Header("Candidates").SetAlign(tabulate.MR)
	tab.Header("Duration").SetAlign(tabulate.MR)
	tab.Header("Status").SetAlign(tabulate.ML)

	for _, res := range results {
		row := tab.Row()
		row.Column(res.Name)
		if res.Start != nil {
			row.Column(truncateDigits(res.Start.String(), 12))
		} else {
			row.Column("")
		}
		if res.Err != nil {
			row.Column("")
			row.Column(fmt.Sprint(res.Candidates))
			row.Column(FormatDuration(res.Duration))
			row.Column(fmt.Sprintf("❌ %v", res.Err))
			continue
		}
		row.Column(truncateDigits(res.Prime.String(), 12)).SetFormat(tabulate.FmtBold)
		row.Column(fmt.Sprint(res.Candidates))
		row.Column(FormatDuration(res.Duration))
		row.Column("✅ " + res.Status.String())
	}
	tab.Print(out)
}

// PresentResult displays the detailed report of one search.
func (CLIResultPresenter) PresentResult(result orchestration.SearchResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result, opts.Verbose, out)
}

// HandleError reports a search failure and returns the exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleSearchError(err, duration, out, CLIColorProvider{})
}

// FormatDuration formats a duration for tables, showing "< 1µs" for zero.
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// CLIColorProvider supplies the active theme's colors to apperrors.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

// Red returns the error color.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the warning color.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the reset sequence.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// DisplayMemoryStats shows memory statistics after a search.
func DisplayMemoryStats(heapAlloc, totalAlloc uint64, numGC uint32, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(totalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
}
