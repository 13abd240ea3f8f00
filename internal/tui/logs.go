package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/primecalc/internal/config"
	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/orchestration"
)

// maxLogEntries bounds the log history.
const maxLogEntries = 500

// progressLogStep is the progress gap between two logged updates of the
// same candidate.
const progressLogStep = 0.25

// LogsModel is the scrolling event log of the dashboard.
type LogsModel struct {
	names      []string
	entries    []string
	candidates []string
	logged     []float64
	offset     int
	follow     bool
	keymap     KeyMap
	width      int
	height     int
}

// NewLogsModel creates a log for the named searches.
func NewLogsModel(names []string) LogsModel {
	return LogsModel{
		names:      names,
		candidates: make([]string, len(names)),
		logged:     make([]float64, len(names)),
		follow:     true,
		keymap:     DefaultKeyMap(),
	}
}

// SetSize updates dimensions.
func (l *LogsModel) SetSize(w, h int) {
	l.width = w
	l.height = h
}

// Reset clears the log.
func (l *LogsModel) Reset() {
	l.entries = nil
	l.offset = 0
	l.follow = true
	for i := range l.candidates {
		l.candidates[i] = ""
		l.logged[i] = 0
	}
}

func (l *LogsModel) add(line string) {
	stamp := logTimeStyle.Render(time.Now().Format("15:04:05"))
	l.entries = append(l.entries, stamp+" "+line)
	if len(l.entries) > maxLogEntries {
		l.entries = l.entries[len(l.entries)-maxLogEntries:]
	}
	if l.follow {
		l.offset = l.maxOffset()
	}
}

func (l *LogsModel) name(index int) string {
	if index >= 0 && index < len(l.names) {
		return l.names[index]
	}
	return fmt.Sprintf("search %d", index)
}

// AddExecutionConfig logs the parameters of the run.
func (l *LogsModel) AddExecutionConfig(cfg config.AppConfig) {
	l.add(fmt.Sprintf("Mode %s, layout %s, %d search(es)", cfg.Mode, cfg.Layout(), len(l.names)))
	switch cfg.Mode {
	case config.ModeRandom:
		l.add(fmt.Sprintf("Random candidates of %d bytes, seed %d", cfg.Bytes, cfg.Seed))
	case config.ModeProbable:
		l.add(fmt.Sprintf("Candidates of %d digits, %s of trial division each", cfg.Digits, cfg.TrialLimit()))
	}
	l.add(fmt.Sprintf("Timeout %s", cfg.Timeout))
}

// AddProgressEntry logs new candidates and every progressLogStep of the
// divisor range of the current one.
func (l *LogsModel) AddProgressEntry(msg ProgressMsg) {
	i := msg.WorkerIndex
	if i < 0 || i >= len(l.candidates) {
		return
	}
	name := logSearchStyle.Render(l.name(i))
	if msg.Candidate != "" && msg.Candidate != l.candidates[i] {
		l.candidates[i] = msg.Candidate
		l.logged[i] = 0
		l.add(fmt.Sprintf("%s testing candidate #%d: %s", name, msg.Candidates, shorten(msg.Candidate, 20)))
		return
	}
	if msg.Value-l.logged[i] >= progressLogStep {
		l.logged[i] = msg.Value
		l.add(fmt.Sprintf("%s %s divisors tried", name, logProgressStyle.Render(fmt.Sprintf("%3.0f%%", msg.Value*100))))
	}
}

// AddResults logs the outcome of every search.
func (l *LogsModel) AddResults(results []orchestration.SearchResult) {
	for _, r := range results {
		name := logSearchStyle.Render(r.Name)
		if r.Err != nil {
			l.add(fmt.Sprintf("%s %s after %s", name, logErrorStyle.Render("failed: "+r.Err.Error()), format.FormatExecutionDuration(r.Duration)))
			continue
		}
		l.add(fmt.Sprintf("%s %s in %s", name, logSuccessStyle.Render("found "+shorten(r.Prime.String(), 20)), format.FormatExecutionDuration(r.Duration)))
	}
}

// AddFinalResult logs the winning search.
func (l *LogsModel) AddFinalResult(msg FinalResultMsg) {
	r := msg.Result
	value := r.Prime.String()
	if !msg.Verbose {
		value = shorten(value, 30)
	}
	l.add(logSuccessStyle.Render(fmt.Sprintf("%s: p = %s (%s)", r.Name, value, r.Status)))
	l.add(fmt.Sprintf("%d bits, %d candidate(s), %s division(s), %s",
		r.Prime.BitLen(), r.Candidates, format.FormatNumberString(fmt.Sprint(r.Divisions)), format.FormatExecutionDuration(r.Duration)))
}

// AddError logs a failed run.
func (l *LogsModel) AddError(msg ErrorMsg) {
	l.add(logErrorStyle.Render(fmt.Sprintf("No prime found after %s: %v", format.FormatExecutionDuration(msg.Duration), msg.Err)))
}

// Update scrolls the log.
func (l *LogsModel) Update(msg tea.KeyMsg) {
	page := max(l.visibleLines(l.height), 1)
	switch {
	case key.Matches(msg, l.keymap.Up):
		l.offset--
	case key.Matches(msg, l.keymap.Down):
		l.offset++
	case key.Matches(msg, l.keymap.PageUp):
		l.offset -= page
	case key.Matches(msg, l.keymap.PageDown):
		l.offset += page
	}
	l.offset = min(max(l.offset, 0), l.maxOffset())
	l.follow = l.offset == l.maxOffset()
}

func (l LogsModel) visibleLines(height int) int {
	return height - 3
}

func (l LogsModel) maxOffset() int {
	return max(len(l.entries)-l.visibleLines(l.height), 0)
}

// View renders the log at its own height.
func (l LogsModel) View() string {
	return l.renderToHeight(l.height)
}

// renderToHeight renders the log panel with the given outer height.
func (l LogsModel) renderToHeight(height int) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(" Search Log"))

	visible := max(l.visibleLines(height), 0)
	start := min(l.offset, max(len(l.entries)-visible, 0))
	end := min(start+visible, len(l.entries))
	for _, line := range l.entries[start:end] {
		b.WriteString("\n ")
		b.WriteString(line)
	}

	return panelStyle.
		Width(max(l.width-2, 0)).
		Height(max(height-2, 0)).
		MaxHeight(max(height, 0)).
		Render(b.String())
}
