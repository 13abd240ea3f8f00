package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/primecalc/internal/config"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/prime"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	searches := []orchestration.Searcher{stubSearch{
		name:   "next",
		result: prime.Result{Prime: mustUint(t, 13), Status: prime.Prime, Candidates: 1},
	}}
	m := NewModel(context.Background(), searches, config.AppConfig{Mode: config.ModeNext, Timeout: time.Minute}, "dev")
	t.Cleanup(m.cancel)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelViewBeforeResize(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q", got)
	}
}

func TestModelLayout(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.logsWidth() != 72 || m.rightWidth() != 48 {
		t.Errorf("widths = %d/%d, want 72/48", m.logsWidth(), m.rightWidth())
	}
	if m.bodyHeight() != 38 || m.metricsHeight() != MetricsPanelHeight || m.chartHeight() != 30 {
		t.Errorf("heights = %d/%d/%d", m.bodyHeight(), m.metricsHeight(), m.chartHeight())
	}

	view := m.View()
	for _, want := range []string{"Primecalc Monitor", "Search Log", "Progress Chart", "SEARCHING"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModelSmallTerminal(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 3})
	if m.bodyHeight() != minBodyHeight {
		t.Errorf("bodyHeight() = %d, want %d", m.bodyHeight(), minBodyHeight)
	}
	_ = m.View()
}

func TestModelProgressAndPause(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	before := len(m.logs.entries)

	m, _ = update(t, m, ProgressMsg{WorkerIndex: 0, Value: 0.1, AverageProgress: 0.1, Candidate: "13", Candidates: 1})
	if len(m.logs.entries) != before+1 {
		t.Fatalf("progress not logged: %q", m.logs.entries)
	}
	if m.metrics.candidates != 1 || m.metrics.candidate != "13" {
		t.Errorf("metrics candidates = %d/%q", m.metrics.candidates, m.metrics.candidate)
	}
	if m.chart.averageProgress != 0.1 {
		t.Errorf("chart progress = %v", m.chart.averageProgress)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if !m.paused {
		t.Fatal("p did not pause")
	}
	m, _ = update(t, m, ProgressMsg{WorkerIndex: 0, Value: 0.9, AverageProgress: 0.9, Candidate: "15", Candidates: 2})
	if m.chart.averageProgress != 0.1 {
		t.Errorf("paused model recorded progress %v", m.chart.averageProgress)
	}
	_, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("paused model stopped ticking")
	}
}

func TestModelSearchComplete(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)

	m, _ = update(t, m, SearchCompleteMsg{ExitCode: apperrors.ExitErrorTimeout, Generation: m.generation + 1})
	if m.done {
		t.Fatal("stale completion accepted")
	}

	m, _ = update(t, m, ErrorMsg{Err: context.DeadlineExceeded, Duration: time.Second})
	m, _ = update(t, m, SearchCompleteMsg{ExitCode: apperrors.ExitErrorTimeout, Generation: m.generation})
	if !m.done || m.exitCode != apperrors.ExitErrorTimeout {
		t.Errorf("done = %v exitCode = %d", m.done, m.exitCode)
	}
	if !strings.Contains(m.footer.Status(), "FAILED") {
		t.Errorf("footer status = %q", m.footer.Status())
	}
	if _, cmd := update(t, m, TickMsg(time.Now())); cmd != nil {
		t.Error("finished model keeps ticking")
	}
}

func TestModelReset(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	oldCtx := m.ctx
	m, _ = update(t, m, SearchCompleteMsg{ExitCode: apperrors.ExitSuccess, Generation: m.generation})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd == nil {
		t.Fatal("reset returned no command")
	}
	if m.generation != 1 || m.done {
		t.Errorf("generation = %d done = %v", m.generation, m.done)
	}
	if oldCtx.Err() == nil {
		t.Error("reset did not cancel the previous run")
	}
	if m.ctx.Err() != nil {
		t.Error("new run context already canceled")
	}
}

func TestModelQuit(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if m.ctx.Err() == nil {
		t.Error("quit did not cancel the run")
	}
}

func TestModelHelpToggle(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.footer.help.ShowAll {
		t.Error("? did not expand the help")
	}
}

func TestStartSearchCmd(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	msg := startSearchCmd(m.ref, m.ctx, m.searches, m.config, 7)()
	done, ok := msg.(SearchCompleteMsg)
	if !ok {
		t.Fatalf("msg = %T, want SearchCompleteMsg", msg)
	}
	if done.ExitCode != apperrors.ExitSuccess || done.Generation != 7 {
		t.Errorf("msg = %+v", done)
	}
}

func TestWatchContextCmd(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	msg := watchContextCmd(ctx, 3)()
	cc, ok := msg.(ContextCancelledMsg)
	if !ok || cc.Generation != 3 || cc.Err == nil {
		t.Errorf("msg = %#v", msg)
	}
}

func TestSampleCmds(t *testing.T) {
	t.Parallel()
	m := newTestModel(t)
	mem, ok := sampleMemStatsCmd(m.memory)().(MemStatsMsg)
	if !ok || mem.HeapSys == 0 || mem.NumGoroutine < 1 {
		t.Errorf("mem stats = %+v", mem)
	}
	if _, ok := sampleSysStatsCmd()().(SysStatsMsg); !ok {
		t.Error("sys stats command returned wrong message type")
	}
}
