package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/progress"
)

// programRef is a shared reference to the tea.Program. bubbletea copies the
// model on every Update, so the bridge keeps a pointer that survives copies.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe). It is a no-op
// until a program is set.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter implements orchestration.ProgressReporter by
// forwarding aggregated updates as bubbletea messages.
type TUIProgressReporter struct {
	ref *programRef
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends ProgressMsg to the TUI.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, _ io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numWorkers)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	for update := range progressChan {
		ap := agg.Update(update)
		t.ref.Send(ProgressMsg{
			WorkerIndex:     ap.WorkerIndex,
			Value:           ap.Value,
			AverageProgress: ap.AverageProgress,
			ETA:             ap.ETA,
			Candidate:       ap.Candidate,
			Candidates:      ap.Candidates,
		})
	}
	t.ref.Send(ProgressDoneMsg{})
}

// TUIResultPresenter implements orchestration.ResultPresenter by sending
// result messages to the TUI instead of writing to stdout.
type TUIResultPresenter struct {
	ref *programRef
}

var _ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)

// PresentComparisonTable sends the summary of every search to the TUI.
func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.SearchResult, _ io.Writer) {
	t.ref.Send(ComparisonResultsMsg{Results: results})
}

// PresentResult sends the winning search to the TUI.
func (t *TUIResultPresenter) PresentResult(result orchestration.SearchResult, opts orchestration.PresentationOptions, _ io.Writer) {
	t.ref.Send(FinalResultMsg{Result: result, Verbose: opts.Verbose, Hex: opts.Hex})
}

// HandleError sends an error message to the TUI and returns the exit code.
func (t *TUIResultPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err, Duration: duration})
	return apperrors.HandleSearchError(err, duration, io.Discard, nil)
}
