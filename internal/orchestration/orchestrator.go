package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/progress"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the number of updates dropped when the UI
// is slow to consume them.
const ProgressBufferMultiplier = 5

// ExecuteSearches runs the searches concurrently and collects their results
// in the order of searches.
//
// A failing search does not stop the others; its error is recorded in its
// result. Cancellation of ctx stops every search at its next sampling point.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - searches: The searches to execute.
//   - progressReporter: The progress reporter for displaying updates (use
//     NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []SearchResult: One result per search.
func ExecuteSearches(ctx context.Context, searches []Searcher, progressReporter ProgressReporter, out io.Writer) []SearchResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]SearchResult, len(searches))
	progressChan := make(chan progress.ProgressUpdate, len(searches)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(searches), out)

	for i, s := range searches {
		g.Go(func() error {
			startTime := time.Now()
			res, err := s.Search(ctx, progressChan, i)
			results[i] = SearchResult{
				Name:       s.Name(),
				Start:      s.StartValue(),
				Prime:      res.Prime,
				Status:     res.Status,
				Candidates: res.Candidates,
				Divisions:  res.Divisions,
				Duration:   time.Since(startTime),
				Err:        err,
			}
			if err != nil {
				results[i].Prime = nil
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeResults summarizes the results of one or more searches.
//
// Successful results are sorted first, fastest first. Several results are
// shown in a comparison table; the fastest success is then presented in
// full. When every search failed, the first error decides the exit code.
//
// Parameters:
//   - results: The search results to analyze. The slice is sorted in place.
//   - opts: Presentation options for the detailed result.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeResults(results []SearchResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	if len(results) == 0 {
		return apperrors.ExitSuccess
	}
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstError error
	successCount := 0
	for _, res := range results {
		if res.Err != nil {
			if firstError == nil {
				firstError = res.Err
			}
			continue
		}
		successCount++
	}

	if len(results) > 1 {
		presenter.PresentComparisonTable(results, out)
	}

	if successCount == 0 {
		if len(results) > 1 {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No search found a prime.\n")
		}
		return presenter.HandleError(firstError, results[0].Duration, out)
	}

	if len(results) > 1 {
		fmt.Fprintf(out, "\nGlobal Status: Success. %d of %d searches found a prime.\n", successCount, len(results))
	}
	presenter.PresentResult(results[0], opts, out)
	return apperrors.ExitSuccess
}
