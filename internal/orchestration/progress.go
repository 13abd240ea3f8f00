package orchestration

import (
	"time"

	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/progress"
)

// ProgressAggregator manages multi-worker progress aggregation.
// It wraps format.ProgressWithETA and provides a higher-level API
// for consuming progress updates from a channel. Both CLI and TUI
// use it.
type ProgressAggregator struct {
	state      *format.ProgressWithETA
	numWorkers int
}

// NewProgressAggregator creates a new aggregator for the given number
// of workers. Returns nil if numWorkers <= 0.
func NewProgressAggregator(numWorkers int) *ProgressAggregator {
	if numWorkers <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:      format.NewProgressWithETA(numWorkers),
		numWorkers: numWorkers,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// WorkerIndex is the index of the search that sent the update.
	WorkerIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all workers.
	AverageProgress float64
	// ETA is the estimated time remaining based on smoothed progress rate.
	// Progress restarts with each candidate, so it only covers the current
	// candidates.
	ETA time.Duration
	// Candidate is the candidate under test.
	Candidate string
	// Candidates is the number of candidates the worker has examined.
	Candidates uint64
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avgProgress, eta := a.state.UpdateWithETA(update.WorkerIndex, update.Value)
	return AggregatedProgress{
		WorkerIndex:     update.WorkerIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		ETA:             eta,
		Candidate:       update.Candidate,
		Candidates:      update.Candidates,
	}
}

// CalculateAverage returns the current average progress without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumWorkers returns the number of searches being tracked.
func (a *ProgressAggregator) NumWorkers() int {
	return a.numWorkers
}

// IsMultiWorker returns true if tracking more than one search.
func (a *ProgressAggregator) IsMultiWorker() bool {
	return a.numWorkers > 1
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
