//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/progress"
)

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// HexDisplayEdges specifies the number of hex characters to display at the
	// beginning and end of a truncated hexadecimal number.
	HexDisplayEdges = 40
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples DisplayProgress from a specific spinner implementation.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner followed by the aggregated progress of
// numWorkers searches until progressChan is closed. The bar covers the
// divisor range of the current candidates; it restarts with each new
// candidate.
//
// Parameters:
//   - wg: Signaled when the display has stopped.
//   - progressChan: Updates from the searches.
//   - numWorkers: The number of concurrent searches.
//   - out: The writer the spinner draws on.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numWorkers)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var last orchestration.AggregatedProgress
	candidates := make([]uint64, numWorkers)
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			last = agg.Update(update)
			if update.WorkerIndex >= 0 && update.WorkerIndex < numWorkers {
				candidates[update.WorkerIndex] = update.Candidates
			}
		case <-ticker.C:
			s.UpdateSuffix(" " + FormatProgressLine(last, agg.CalculateAverage(), agg.GetETA(), sum(candidates)))
		}
	}
}

// FormatProgressLine renders the spinner suffix: the progress bar with its
// ETA, the candidate most recently reported and the candidates tried.
func FormatProgressLine(last orchestration.AggregatedProgress, average float64, eta time.Duration, candidates uint64) string {
	line := format.FormatProgressBarWithETA(average, eta, ProgressBarWidth)
	if last.Candidate != "" {
		line += fmt.Sprintf(" | candidate %s", truncateDigits(last.Candidate, DisplayEdges))
	}
	if candidates > 0 {
		line += fmt.Sprintf(" | %d tried", candidates)
	}
	return line
}

func sum(values []uint64) uint64 {
	var total uint64
	for _, v := range values {
		total += v
	}
	return total
}

// truncateDigits shortens s to its first and last edge characters when it
// is longer than 2*edge+3.
func truncateDigits(s string, edge int) string {
	if len(s) <= 2*edge+3 {
		return s
	}
	return s[:edge] + "..." + s[len(s)-edge:]
}
