package orchestration

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/progress"
)

// SearchResult encapsulates the outcome of a single search. It is the shared
// domain type between orchestration and presentation layers.
type SearchResult struct {
	// Name identifies the search, e.g. "worker 2".
	Name string
	// Start is the value the search started from.
	Start *largeuint.Uint
	// Prime is the value found. It is nil if an error occurred.
	Prime *largeuint.Uint
	// Status is the verdict on Prime.
	Status prime.Status
	// Candidates and Divisions count the work done.
	Candidates uint64
	Divisions  uint64
	// Duration is the time taken by the search.
	Duration time.Duration
	// Err contains any error that stopped the search.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	// Verbose prints full decimal values instead of truncated ones.
	Verbose bool
	// Hex adds the hex persistence form of the result.
	Hex bool
}

// Searcher is one search run by ExecuteSearches.
type Searcher interface {
	// Name identifies the search in progress displays and tables.
	Name() string
	// StartValue returns the value the search starts from.
	StartValue() *largeuint.Uint
	// Search runs to completion, publishing progress on progressChan under
	// the given index. Sends never block.
	Search(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int) (prime.Result, error)
}

// ProgressReporter defines the interface for displaying search progress.
// Implementations handle the visual representation of progress (spinners,
// progress bars, dashboards) while the orchestration layer coordinates the
// searches.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from searches.
	//   - numWorkers: The number of concurrent searches being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer) {
	f(wg, progressChan, numWorkers, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting search results.
type ResultPresenter interface {
	// PresentComparisonTable displays the summary table of several searches.
	PresentComparisonTable(results []SearchResult, out io.Writer)

	// PresentResult displays a single search result.
	PresentResult(result SearchResult, opts PresentationOptions, out io.Writer)

	// HandleError reports a failure and returns the process exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
