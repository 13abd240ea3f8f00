package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/primecalc/internal/format"
)

const (
	// sparklineWidth is the room taken by the label and value around a
	// sparkline.
	sparklineWidth = 17
	// minSparklineHeight is the chart height from which the CPU and memory
	// sparklines are shown.
	minSparklineHeight = 10
	// progressLabelWidth is the room taken by the percentage and borders
	// around the progress bar.
	progressLabelWidth = 14
)

// ChartModel plots the average progress of the current candidates together
// with system CPU and memory usage.
type ChartModel struct {
	history         *SampleWindow
	cpuHistory      *SampleWindow
	memHistory      *SampleWindow
	averageProgress float64
	eta             time.Duration
	done            bool
	elapsed         time.Duration
	width           int
	height          int
}

// NewChartModel creates an empty chart.
func NewChartModel() ChartModel {
	return ChartModel{
		history:    NewSampleWindow(64),
		cpuHistory: NewSampleWindow(32),
		memHistory: NewSampleWindow(32),
	}
}

// SetSize updates dimensions and resizes the sample buffers to the plot
// width.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	spark := max(w-sparklineWidth, 1)
	c.cpuHistory.SetCap(spark)
	c.memHistory.SetCap(spark)
	c.history.SetCap(max(2*(w-4), 1))
}

// AddDataPoint records a progress update. Progress restarts with every
// candidate, so the plot shows a saw-tooth over a search.
func (c *ChartModel) AddDataPoint(_ float64, average float64, eta time.Duration) {
	c.averageProgress = average
	c.eta = eta
	c.history.Push(average * 100)
}

// UpdateSysStats records a system sample.
func (c *ChartModel) UpdateSysStats(cpuPercent, memPercent float64) {
	c.cpuHistory.Push(cpuPercent)
	c.memHistory.Push(memPercent)
}

// SetDone freezes the chart with the total duration.
func (c *ChartModel) SetDone(elapsed time.Duration) {
	c.done = true
	c.elapsed = elapsed
}

// Reset clears every sample.
func (c *ChartModel) Reset() {
	c.history.Reset()
	c.cpuHistory.Reset()
	c.memHistory.Reset()
	c.averageProgress = 0
	c.eta = 0
	c.done = false
	c.elapsed = 0
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(" Progress Chart"))

	rows := c.height - 6
	showSparklines := c.height >= minSparklineHeight
	if showSparklines {
		rows -= 2
	}
	for _, line := range RenderBrailleChart(c.history.Values(), c.width-4, rows) {
		b.WriteString("\n ")
		b.WriteString(chartBarStyle.Render(line))
	}

	if bar := c.renderProgressBar(); bar != "" {
		b.WriteString("\n ")
		b.WriteString(bar)
	}
	b.WriteString("\n ")
	if c.done {
		b.WriteString(metricLabelStyle.Render("Done in: "))
		b.WriteString(metricValueStyle.Render(format.FormatExecutionDuration(c.elapsed)))
	} else {
		b.WriteString(metricLabelStyle.Render("ETA: "))
		b.WriteString(metricValueStyle.Render(format.FormatETA(c.eta)))
	}

	if showSparklines {
		b.WriteString("\n ")
		b.WriteString(renderSparklineRow("CPU", c.cpuHistory, cpuSparklineStyle.Render))
		b.WriteString("\n ")
		b.WriteString(renderSparklineRow("MEM", c.memHistory, memSparklineStyle.Render))
	}

	return panelStyle.
		Width(max(c.width-2, 0)).
		Height(max(c.height-2, 0)).
		Render(b.String())
}

// renderProgressBar renders "█████░░░░ 50.0%", or "" when the panel is too
// narrow.
func (c ChartModel) renderProgressBar() string {
	width := c.width - progressLabelWidth
	if width < 10 {
		return ""
	}
	p := min(max(c.averageProgress, 0), 1)
	filled := int(p * float64(width))
	return chartBarStyle.Render(strings.Repeat("█", filled)) +
		chartEmptyStyle.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %5.1f%%", p*100)
}

func renderSparklineRow(label string, samples *SampleWindow, render func(...string) string) string {
	return fmt.Sprintf("%s %s %5.1f%%",
		metricLabelStyle.Render(label),
		render(RenderSparkline(samples.Values())),
		samples.Last())
}
