package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primecalc/internal/format"
)

// MetricsModel displays runtime memory figures and search throughput.
type MetricsModel struct {
	alloc        uint64
	heapSys      uint64
	heapObjects  uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int
	load1        float64
	saturated    bool
	speed        float64 // candidates per second
	candidates   uint64
	lastCount    uint64
	lastUpdate   time.Time
	candidate    string
	width        int
	height       int
}

// NewMetricsModel creates a new metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		lastUpdate: time.Now(),
	}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapSys = msg.HeapSys
	m.heapObjects = msg.HeapObjects
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

// UpdateSysStats records the load average.
func (m *MetricsModel) UpdateSysStats(msg SysStatsMsg) {
	m.load1 = msg.Load1
	m.saturated = msg.Saturated
}

// UpdateCandidates records the candidate under test and the number of
// candidates examined so far, and updates the smoothed throughput.
func (m *MetricsModel) UpdateCandidates(candidate string, candidates uint64) {
	if candidate != "" {
		m.candidate = candidate
	}
	m.candidates = max(m.candidates, candidates)

	now := time.Now()
	dt := now.Sub(m.lastUpdate).Seconds()
	if dt <= 0.05 {
		return
	}
	if m.candidates > m.lastCount {
		instant := float64(m.candidates-m.lastCount) / dt
		if m.speed > 0 {
			m.speed = 0.7*m.speed + 0.3*instant
		} else {
			m.speed = instant
		}
	}
	m.lastCount = m.candidates
	m.lastUpdate = now
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	var rows strings.Builder
	rows.WriteString(panelTitleStyle.Render(" Metrics"))

	colWidth := max((m.width-6)/2, 0)
	load := fmt.Sprintf("%.2f", m.load1)
	if m.saturated {
		load += " (saturated)"
	}
	left := []string{
		formatMetricCol("Memory:", format.FormatBytes(m.alloc)+" / "+format.FormatBytes(m.heapSys), colWidth),
		formatMetricCol("GC Runs:", fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6), colWidth),
		formatMetricCol("Speed:", fmt.Sprintf("%.1f cand/s", m.speed), colWidth),
	}
	right := []string{
		formatMetricCol("Heap objs:", format.FormatNumberString(fmt.Sprint(m.heapObjects)), colWidth),
		formatMetricCol("Goroutines:", fmt.Sprint(m.numGoroutine), colWidth),
		formatMetricCol("Load:", load, colWidth),
	}
	for i := range left {
		rows.WriteString("\n")
		rows.WriteString(left[i])
		rows.WriteString(right[i])
	}

	rows.WriteString("\n")
	rows.WriteString(formatMetricCol("Candidates:", fmt.Sprint(m.candidates), colWidth))
	if m.candidate != "" {
		rows.WriteString("\n")
		edge := max((m.width-20)/2, 4)
		rows.WriteString(formatMetricCol("Testing:", shorten(m.candidate, edge), 0))
	}

	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
	if visible := lipgloss.Width(cell); visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}

// shorten keeps the first and last edge characters of long values.
func shorten(s string, edge int) string {
	if len(s) <= 2*edge+3 {
		return s
	}
	return s[:edge] + "..." + s[len(s)-edge:]
}
