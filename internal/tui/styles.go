package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primecalc/internal/ui"
)

// Dashboard styles, rebuilt from the ui theme by initTUIStyles.
var (
	panelStyle         lipgloss.Style
	panelTitleStyle    lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	versionStyle       lipgloss.Style
	elapsedStyle       lipgloss.Style
	logTimeStyle       lipgloss.Style
	logSearchStyle     lipgloss.Style
	logProgressStyle   lipgloss.Style
	logSuccessStyle    lipgloss.Style
	logErrorStyle      lipgloss.Style
	metricLabelStyle   lipgloss.Style
	metricValueStyle   lipgloss.Style
	chartBarStyle      lipgloss.Style
	chartEmptyStyle    lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusPausedStyle  lipgloss.Style
	statusDoneStyle    lipgloss.Style
	statusErrorStyle   lipgloss.Style
	cpuSparklineStyle  lipgloss.Style
	memSparklineStyle  lipgloss.Style
	helpStyles         help.Styles
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme. Run calls it
// again once the theme has been chosen.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	versionStyle = lipgloss.NewStyle().Foreground(t.Dim)
	elapsedStyle = lipgloss.NewStyle().Foreground(t.Accent)

	logTimeStyle = lipgloss.NewStyle().Foreground(t.Dim)
	logSearchStyle = lipgloss.NewStyle().Foreground(t.Info)
	logProgressStyle = lipgloss.NewStyle().Foreground(t.Accent)
	logSuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	logErrorStyle = lipgloss.NewStyle().Foreground(t.Error)

	metricLabelStyle = lipgloss.NewStyle().Foreground(t.Dim)
	metricValueStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	chartBarStyle = lipgloss.NewStyle().Foreground(t.Accent)
	chartEmptyStyle = lipgloss.NewStyle().Foreground(t.Dim)

	statusRunningStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	statusPausedStyle = lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
	statusDoneStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	statusErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)

	cpuSparklineStyle = lipgloss.NewStyle().Foreground(t.Accent)
	memSparklineStyle = lipgloss.NewStyle().Foreground(t.Warning)

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.Dim)
	sepStyle := lipgloss.NewStyle().Foreground(t.Border)
	helpStyles = help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}
