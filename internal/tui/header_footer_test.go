package tui

import (
	"strings"
	"testing"
	"time"
)

func TestHeaderView(t *testing.T) {
	t.Parallel()
	h := NewHeaderModel("v1.2.0", "random")
	h.SetWidth(100)
	view := h.View()
	for _, want := range []string{"Primecalc Monitor v1.2.0", "mode: random", "Elapsed:"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q: %q", want, view)
		}
	}

	dev := NewHeaderModel("dev", "")
	dev.SetWidth(100)
	if v := dev.View(); strings.Contains(v, "dev") || strings.Contains(v, "mode:") {
		t.Errorf("dev header = %q", v)
	}
}

func TestHeaderElapsedFrozen(t *testing.T) {
	t.Parallel()
	h := NewHeaderModel("dev", "next")
	h.startTime = time.Now().Add(-time.Second)
	h.SetDone()
	first := h.Elapsed()
	time.Sleep(5 * time.Millisecond)
	if h.Elapsed() != first {
		t.Error("Elapsed() changed after SetDone")
	}
	if first < time.Second {
		t.Errorf("Elapsed() = %v, want >= 1s", first)
	}

	h.Reset()
	if h.Elapsed() >= time.Second {
		t.Errorf("Elapsed() after Reset = %v", h.Elapsed())
	}
}

func TestFooterStatus(t *testing.T) {
	t.Parallel()
	f := NewFooterModel(DefaultKeyMap())
	f.SetWidth(120)

	if !strings.Contains(f.Status(), "SEARCHING") {
		t.Errorf("initial status = %q", f.Status())
	}
	f.SetPaused(true)
	if !strings.Contains(f.Status(), "PAUSED") {
		t.Errorf("paused status = %q", f.Status())
	}
	f.SetDone(true)
	if !strings.Contains(f.Status(), "DONE") {
		t.Errorf("done status = %q", f.Status())
	}
	f.SetError(true)
	if !strings.Contains(f.Status(), "FAILED") {
		t.Errorf("error status = %q", f.Status())
	}
}

func TestFooterHelpToggle(t *testing.T) {
	t.Parallel()
	f := NewFooterModel(DefaultKeyMap())
	f.SetWidth(200)

	short := f.View()
	if !strings.Contains(short, "quit") {
		t.Errorf("short help = %q", short)
	}
	if strings.Contains(short, "scroll up") {
		t.Errorf("short help shows scroll bindings: %q", short)
	}

	f.ToggleHelp()
	if full := f.View(); !strings.Contains(full, "scroll up") {
		t.Errorf("full help = %q", full)
	}
}
