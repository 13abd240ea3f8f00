package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/primecalc/internal/cli"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/metrics"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/tui"
	"github.com/agbru/primecalc/internal/ui"
)

// runSearch orchestrates the next, random and probable modes on the
// command line.
func (a *Application) runSearch(ctx context.Context, out io.Writer) int {
	searches, err := orchestration.PlanSearches(a.Config, a.searchOptions(), a.progressObserver())
	if err != nil {
		return a.fail(err, apperrors.ExitErrorConfig)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(searches, out)
	}

	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	results := orchestration.ExecuteSearches(ctx, searches, progressReporter, progressOut)
	for _, r := range results {
		if r.Err != nil {
			a.Logger.Debug("search failed", logging.String("search", r.Name), logging.Err(r.Err))
			continue
		}
		a.Logger.Info("prime found",
			logging.String("search", r.Name),
			logging.Int("bits", r.Prime.BitLen()),
			logging.Uint64("candidates", r.Candidates),
			logging.Duration("duration", r.Duration))
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Mode:       a.Config.Mode,
	}
	return a.analyzeResultsWithOutput(results, outputCfg, out)
}

// runTUI launches the interactive dashboard for the search modes.
func (a *Application) runTUI(ctx context.Context) int {
	searches, err := orchestration.PlanSearches(a.Config, a.searchOptions(), a.progressObserver())
	if err != nil {
		return a.fail(err, apperrors.ExitErrorConfig)
	}
	return tui.Run(ctx, searches, a.Config, Version)
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.SearchResult, outputCfg cli.OutputConfig, out io.Writer) int {
	bestResult := findBestResult(results)

	if outputCfg.Quiet && bestResult != nil {
		if err := cli.DisplayResultWithConfig(out, *bestResult, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	presOpts := orchestration.PresentationOptions{
		Verbose: a.Config.Verbose,
		Hex:     a.Config.Verbose,
	}
	exitCode := orchestration.AnalyzeResults(results, presOpts, cli.CLIResultPresenter{}, out)

	if bestResult != nil && exitCode == apperrors.ExitSuccess && outputCfg.OutputFile != "" {
		if err := cli.WriteResultToFile(*bestResult, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
	}

	if a.Config.Verbose && !outputCfg.Quiet {
		snap := metrics.NewMemoryCollector().Snapshot()
		cli.DisplayMemoryStats(snap.HeapAlloc, snap.Sys, snap.NumGC, out)
	}
	return exitCode
}

// findBestResult returns the fastest successful result, or nil. It copies
// the result since AnalyzeResults reorders the slice.
func findBestResult(results []orchestration.SearchResult) *orchestration.SearchResult {
	var bestResult *orchestration.SearchResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				r := results[i]
				bestResult = &r
			}
		}
	}
	return bestResult
}
