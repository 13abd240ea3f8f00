package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primecalc/internal/format"
)

// HeaderModel renders the top bar: title, version, mode and elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	mode      string
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version, mode string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		mode:      mode,
	}
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the time since the start, frozen once done.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "Primecalc Monitor"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := versionStyle.Render(" | ")
	left := titleStyle.Render(titleText)
	if h.mode != "" {
		left += pipe + versionStyle.Render("mode: "+h.mode)
	}
	left += pipe + elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(h.Elapsed())))

	gap := max(h.width-2-lipgloss.Width(left), 0)
	return headerStyle.Width(h.width).Render(left + strings.Repeat(" ", gap))
}
