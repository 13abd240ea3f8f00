package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps the estimate shown for very slow searches.
const maxETA = 24 * time.Hour

// ProgressState tracks the completion fraction of several concurrent
// searches.
type ProgressState struct {
	progresses []float64
	numWorkers int
}

// NewProgressState creates a state for numWorkers searches, all at zero.
func NewProgressState(numWorkers int) *ProgressState {
	if numWorkers < 0 {
		numWorkers = 0
	}
	return &ProgressState{
		progresses: make([]float64, numWorkers),
		numWorkers: numWorkers,
	}
}

// Update records the progress of one search. Out-of-range indices are
// ignored and values are clamped to [0, 1].
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	ps.progresses[index] = min(max(value, 0), 1)
}

// CalculateAverage returns the mean progress over all searches.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numWorkers == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numWorkers)
}

// ProgressWithETA extends ProgressState with a smoothed progress rate used
// to estimate the remaining time.
type ProgressWithETA struct {
	*ProgressState
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64
}

// NewProgressWithETA creates a progress tracker for numWorkers searches.
func NewProgressWithETA(numWorkers int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numWorkers),
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records the progress of one search and returns the average
// progress together with the estimated remaining time.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	progress := p.CalculateAverage()

	now := time.Now()
	if elapsed := now.Sub(p.lastUpdate).Seconds(); elapsed > 0 && progress > p.lastProgress {
		rate := (progress - p.lastProgress) / elapsed
		if p.progressRate == 0 {
			p.progressRate = rate
		} else {
			p.progressRate = 0.7*p.progressRate + 0.3*rate
		}
		p.lastUpdate = now
		p.lastProgress = progress
	}
	return progress, p.GetETA()
}

// GetETA returns the estimated remaining time, or 0 while no rate is known.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	seconds := remaining / p.progressRate
	if seconds > maxETA.Seconds() {
		return maxETA
	}
	return time.Duration(seconds * float64(time.Second))
}

// Elapsed returns the time since the tracker was created.
func (p *ProgressWithETA) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// FormatETA renders an ETA compactly: "calculating..." when unknown, "< 1s",
// "45s", "2m30s" or "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		s := int(eta.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h := int(eta.Hours())
		m := int(eta.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders a bar of the given length with █ for the completed
// part and ░ for the rest.
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "[bar]  42.00% ETA: 1m5s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %6.2f%% ETA: %s", ProgressBar(progress, width), min(max(progress, 0), 1)*100, FormatETA(eta))
}
