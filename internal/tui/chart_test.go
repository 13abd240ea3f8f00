package tui

import (
	"strings"
	"testing"
	"time"
)

func TestChartModel_AddDataPoint(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 10)

	chart.AddDataPoint(0.25, 0.25, 30*time.Second)
	chart.AddDataPoint(0.50, 0.50, 20*time.Second)
	chart.AddDataPoint(0.75, 0.75, 10*time.Second)

	if chart.averageProgress != 0.75 {
		t.Errorf("expected average 0.75, got %f", chart.averageProgress)
	}
	if chart.eta != 10*time.Second {
		t.Errorf("expected eta 10s, got %v", chart.eta)
	}
	if chart.history.Len() != 3 {
		t.Errorf("expected 3 samples, got %d", chart.history.Len())
	}
}

func TestChartModel_Reset(t *testing.T) {
	chart := NewChartModel()
	chart.AddDataPoint(0.5, 0.5, 10*time.Second)
	chart.UpdateSysStats(25.0, 60.0)
	chart.SetDone(time.Second)

	chart.Reset()

	if chart.averageProgress != 0 || chart.done {
		t.Errorf("expected cleared state, got average %f done %v", chart.averageProgress, chart.done)
	}
	if chart.history.Len() != 0 || chart.cpuHistory.Len() != 0 || chart.memHistory.Len() != 0 {
		t.Error("expected empty buffers after reset")
	}
}

func TestChartModel_View(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 10)
	chart.AddDataPoint(0.3, 0.3, 20*time.Second)
	chart.AddDataPoint(0.6, 0.6, 10*time.Second)

	view := chart.View()
	for _, s := range []string{"Progress Chart", "ETA:", "10s", "60.0%"} {
		if !strings.Contains(view, s) {
			t.Errorf("expected view to contain %q:\n%s", s, view)
		}
	}
}

func TestChartModel_View_Done(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 10)
	chart.SetDone(1500 * time.Millisecond)

	view := chart.View()
	if !strings.Contains(view, "Done in:") || strings.Contains(view, "ETA:") {
		t.Errorf("expected the total duration instead of the ETA:\n%s", view)
	}
}

func TestChartModel_RenderProgressBar(t *testing.T) {
	tests := []struct {
		progress float64
		contains []string
	}{
		{0.5, []string{"█", "░", "50.0%"}},
		{0, []string{"░", "0.0%"}},
		{1, []string{"█", "100.0%"}},
		{1.5, []string{"100.0%"}},
	}
	for _, tt := range tests {
		chart := NewChartModel()
		chart.SetSize(50, 10)
		chart.AddDataPoint(tt.progress, tt.progress, 0)

		bar := chart.renderProgressBar()
		for _, s := range tt.contains {
			if !strings.Contains(bar, s) {
				t.Errorf("progress %v: bar %q missing %q", tt.progress, bar, s)
			}
		}
	}
}

func TestChartModel_RenderProgressBar_TooNarrow(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(10, 5)

	if bar := chart.renderProgressBar(); bar != "" {
		t.Errorf("expected empty progress bar for a narrow chart, got %q", bar)
	}
}

func TestChartModel_UpdateSysStats(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 15)

	chart.UpdateSysStats(25.0, 60.0)
	chart.UpdateSysStats(30.0, 62.0)

	if chart.cpuHistory.Len() != 2 || chart.memHistory.Len() != 2 {
		t.Errorf("expected 2 samples each, got %d/%d", chart.cpuHistory.Len(), chart.memHistory.Len())
	}
	if chart.cpuHistory.Last() != 30.0 || chart.memHistory.Last() != 62.0 {
		t.Errorf("unexpected last samples %f/%f", chart.cpuHistory.Last(), chart.memHistory.Last())
	}
}

func TestChartModel_View_Sparklines(t *testing.T) {
	tall := NewChartModel()
	tall.SetSize(50, 15)
	tall.UpdateSysStats(50.0, 75.0)
	view := tall.View()
	if !strings.Contains(view, "CPU") || !strings.Contains(view, "MEM") {
		t.Errorf("expected sparklines in a tall chart:\n%s", view)
	}

	short := NewChartModel()
	short.SetSize(50, 8)
	short.UpdateSysStats(50.0, 75.0)
	if strings.Contains(short.View(), "CPU") {
		t.Error("expected sparklines to be hidden for a short chart")
	}
}

func TestChartModel_SetSize_ResizesBuffers(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 15)

	want := 50 - sparklineWidth
	if chart.cpuHistory.Cap() != want || chart.memHistory.Cap() != want {
		t.Errorf("expected sparkline buffers of %d, got %d/%d", want, chart.cpuHistory.Cap(), chart.memHistory.Cap())
	}
	if chart.history.Cap() != 2*(50-4) {
		t.Errorf("expected progress buffer of %d, got %d", 2*(50-4), chart.history.Cap())
	}
}
