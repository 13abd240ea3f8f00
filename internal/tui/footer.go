package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// FooterModel renders the run status and the key help.
type FooterModel struct {
	help     help.Model
	keymap   KeyMap
	paused   bool
	done     bool
	hasError bool
	width    int
}

// NewFooterModel creates a new footer.
func NewFooterModel(keymap KeyMap) FooterModel {
	h := help.New()
	h.Styles = helpStyles
	return FooterModel{help: h, keymap: keymap}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
	f.help.Width = w
}

// SetPaused updates the paused indicator.
func (f *FooterModel) SetPaused(paused bool) { f.paused = paused }

// SetDone updates the done indicator.
func (f *FooterModel) SetDone(done bool) { f.done = done }

// SetError updates the error indicator.
func (f *FooterModel) SetError(hasError bool) { f.hasError = hasError }

// ToggleHelp switches between the short and full key help.
func (f *FooterModel) ToggleHelp() { f.help.ShowAll = !f.help.ShowAll }

// Status returns the status label.
func (f FooterModel) Status() string {
	switch {
	case f.hasError:
		return statusErrorStyle.Render("● FAILED")
	case f.done:
		return statusDoneStyle.Render("● DONE")
	case f.paused:
		return statusPausedStyle.Render("● PAUSED")
	}
	return statusRunningStyle.Render("● SEARCHING")
}

// View renders the footer.
func (f FooterModel) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, " ", f.Status(), "  ", f.help.View(f.keymap))
}
