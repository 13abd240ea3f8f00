package tui

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primecalc/internal/config"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/metrics"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/sysmon"
)

const (
	headerHeight  = 1
	footerHeight  = 1
	minBodyHeight = 4
	tickInterval  = 500 * time.Millisecond

	// LogsPanelWidthPercent is the share of the terminal width given to the
	// search log; the metrics and chart stack in the rest.
	LogsPanelWidthPercent = 60
	// MetricsPanelHeight caps the metrics panel; it never takes more than
	// half the body.
	MetricsPanelHeight = 8
)

// session is one run of the planned searches. Reset replaces it with a new
// generation; messages from older generations are dropped.
type session struct {
	ctx        context.Context
	cancel     context.CancelFunc
	searches   []orchestration.Searcher
	generation uint64
	done       bool
	exitCode   int
}

func newSession(parent context.Context, searches []orchestration.Searcher, generation uint64) session {
	ctx, cancel := context.WithCancel(parent)
	return session{ctx: ctx, cancel: cancel, searches: searches, generation: generation, exitCode: apperrors.ExitSuccess}
}

func (s session) stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// geometry splits the terminal between the panels.
type geometry struct {
	width  int
	height int
}

func (g geometry) bodyHeight() int { return max(g.height-headerHeight-footerHeight, minBodyHeight) }

func (g geometry) logsWidth() int { return g.width * LogsPanelWidthPercent / 100 }

func (g geometry) rightWidth() int { return g.width - g.logsWidth() }

func (g geometry) metricsHeight() int { return min(MetricsPanelHeight, g.bodyHeight()/2) }

func (g geometry) chartHeight() int { return g.bodyHeight() - g.metricsHeight() }

// Model is the search monitor: a log of the searches on the left, the
// runtime metrics and the progress chart on the right.
type Model struct {
	header  HeaderModel
	logs    LogsModel
	metrics MetricsModel
	chart   ChartModel
	footer  FooterModel
	keymap  KeyMap

	session
	geometry

	parentCtx context.Context
	config    config.AppConfig
	memory    *metrics.MemoryCollector
	ref       *programRef
	paused    bool
}

// NewModel creates the monitor for the given searches. Nothing runs until
// Init.
func NewModel(parentCtx context.Context, searches []orchestration.Searcher, cfg config.AppConfig, version string) Model {
	names := make([]string, len(searches))
	for i, s := range searches {
		names[i] = s.Name()
	}
	logs := NewLogsModel(names)
	logs.AddExecutionConfig(cfg)
	keymap := DefaultKeyMap()

	return Model{
		header:    NewHeaderModel(version, cfg.Mode),
		logs:      logs,
		metrics:   NewMetricsModel(),
		chart:     NewChartModel(),
		footer:    NewFooterModel(keymap),
		keymap:    keymap,
		session:   newSession(parentCtx, searches, 0),
		parentCtx: parentCtx,
		config:    cfg,
		memory:    metrics.NewMemoryCollector(),
		ref:       &programRef{},
	}
}

// Init starts the searches of the first generation.
func (m Model) Init() tea.Cmd {
	return m.launch()
}

func (m Model) launch() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startSearchCmd(m.ref, m.ctx, m.searches, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.onKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layoutPanels()
	case ProgressMsg:
		if m.paused {
			break
		}
		m.logs.AddProgressEntry(msg)
		m.chart.AddDataPoint(msg.Value, msg.AverageProgress, msg.ETA)
		m.metrics.UpdateCandidates(msg.Candidate, msg.Candidates)
	case ComparisonResultsMsg:
		m.logs.AddResults(msg.Results)
	case FinalResultMsg:
		m.logs.AddFinalResult(msg)
	case ErrorMsg:
		m.logs.AddError(msg)
		m.footer.SetError(true)
	case TickMsg:
		return m, m.onTick()
	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
	case SysStatsMsg:
		m.chart.UpdateSysStats(msg.CPUPercent, msg.MemPercent)
		m.metrics.UpdateSysStats(msg)
	case SearchCompleteMsg:
		if msg.Generation == m.generation {
			m.finish(msg.ExitCode)
		}
	case ContextCancelledMsg:
		if msg.Generation == m.generation {
			m.finish(m.exitCode)
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) onTick() tea.Cmd {
	switch {
	case m.done:
		return nil
	case m.paused:
		return tickCmd()
	default:
		return tea.Batch(sampleMemStatsCmd(m.memory), sampleSysStatsCmd(), tickCmd())
	}
}

func (m *Model) finish(exitCode int) {
	m.done = true
	m.exitCode = exitCode
	m.header.SetDone()
	m.chart.SetDone(m.header.Elapsed())
	m.footer.SetDone(true)
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.stop()
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
	case key.Matches(msg, m.keymap.Help):
		m.footer.ToggleHelp()
	case key.Matches(msg, m.keymap.Reset):
		return m.restart()
	case key.Matches(msg, m.keymap.Up, m.keymap.Down, m.keymap.PageUp, m.keymap.PageDown):
		m.logs.Update(msg)
	}
	return m, nil
}

// restart cancels the running generation and launches the searches again
// with cleared panels.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.stop()
	m.session = newSession(m.parentCtx, m.searches, m.generation+1)
	m.paused = false

	m.header.Reset()
	m.logs.Reset()
	m.logs.AddExecutionConfig(m.config)
	m.chart.Reset()
	m.metrics = NewMetricsModel()
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.footer.SetDone(false)
	m.footer.SetError(false)
	m.footer.SetPaused(false)
	return m, m.launch()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	right := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.chart.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.logs.renderToHeight(lipgloss.Height(right)), right)
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.logs.SetSize(m.logsWidth(), m.bodyHeight())
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.chart.SetSize(m.rightWidth(), m.chartHeight())
}

// Run starts the dashboard on the alternate screen, runs the searches and
// returns the exit code.
func Run(ctx context.Context, searches []orchestration.Searcher, cfg config.AppConfig, version string) int {
	initTUIStyles()

	model := NewModel(ctx, searches, cfg, version)
	defer model.stop()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		m.stop()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startSearchCmd runs the searches and reports their outcome.
func startSearchCmd(ref *programRef, ctx context.Context, searches []orchestration.Searcher, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteSearches(ctx, searches, reporter, io.Discard)
		exitCode := orchestration.AnalyzeResults(results, orchestration.PresentationOptions{Verbose: cfg.Verbose}, presenter, io.Discard)
		return SearchCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func sampleMemStatsCmd(collector *metrics.MemoryCollector) tea.Cmd {
	return func() tea.Msg {
		s := collector.Snapshot()
		return MemStatsMsg{
			Alloc:        s.HeapAlloc,
			HeapSys:      s.HeapSys,
			HeapObjects:  s.HeapObjects,
			NumGC:        s.NumGC,
			PauseTotalNs: s.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
			Load1:      s.Load1,
			Saturated:  s.Saturated(),
		}
	}
}

func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
