package tui

import (
	"time"

	"github.com/agbru/primecalc/internal/orchestration"
)

// ProgressMsg carries one aggregated progress update from the searches.
type ProgressMsg struct {
	WorkerIndex     int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
	Candidate       string
	Candidates      uint64
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the summary of every search.
type ComparisonResultsMsg struct {
	Results []orchestration.SearchResult
}

// FinalResultMsg carries the winning search.
type FinalResultMsg struct {
	Result  orchestration.SearchResult
	Verbose bool
	Hex     bool
}

// ErrorMsg reports that no search succeeded.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	HeapObjects  uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a system-wide resource sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
	Load1      float64
	Saturated  bool
}

// SearchCompleteMsg reports the end of a run. Generation discards messages
// from runs replaced by a reset.
type SearchCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg reports the cancellation of a run.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
