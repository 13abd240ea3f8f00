package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/largeuint"
)

func runREPL(t *testing.T, config REPLConfig, input string) string {
	t.Helper()
	r := NewREPL(config)
	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	r.Start()
	return out.String()
}

func TestREPLCommands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{"add", "add 2 3\n", []string{"  = 5\n"}},
		{"chain with ans", "add 2 3\nmul ans 4\n", []string{"  = 20\n"}},
		{"sub", "sub 1000 1\n", []string{"  = 999\n"}},
		{"negative", "sub 2 3\n", []string{"Error: ", "negative result"}},
		{"div", "div 17 5\n", []string{"  quotient  = 3\n", "  remainder = 2\n"}},
		{"div by zero", "div 1 0\n", []string{"division by zero"}},
		{"mod", "mod 1000 7\n", []string{"  = 6\n"}},
		{"sqrt", "sqrt 26\n", []string{"  ceil(sqrt) = 6\n"}},
		{"sqrt large", "sqrt 1934725265902145\n", []string{"  ceil(sqrt) = 43,985,513\n"}},
		{"sqrt exact", "sqrt 1000000\n", []string{"  ceil(sqrt) = 1,000\n"}},
		{"compare", "cmp 3 0100_03\ncmp 2 3\ncmp 4 3\n", []string{"  3 = 3\n", "  2 < 3\n", "  4 > 3\n"}},
		{"prime", "prime 91\nprime 7919\n", []string{"  91 is not prime (", "  7,919 is prime ("}},
		{"next", "next 1000000\n", []string{"  p = 1,000,003\n", "  2 candidate(s)"}},
		{"base", "base 255 10 2\nbase ff 16 10\n", []string{"  255 (base 10) = 11111111 (base 2)", "  ff (base 16) = 255 (base 10)"}},
		{"bad base", "base 12 ten 2\n", []string{`invalid base "ten"`}},
		{"bits", "bits 6\n", []string{"  011 (3 bits)"}},
		{"hex display", "hex\nadd 0100_0D 0\n", []string{"Hex display: enabled", "  = 0100_0D\n"}},
		{"status", "add 1 1\nstatus\n", []string{"Current configuration:", "8-bit limbs x 30", "Max bits:    240", "ans:"}},
		{"no previous result", "add ans 1\n", []string{"no previous result"}},
		{"operand count", "add 1\n", []string{"expected 2 operand(s), got 1"}},
		{"malformed operand", "add 12x 1\n", []string{"Error: ", "malformed input"}},
		{"unknown", "factor 12\n", []string{"Unknown command: factor"}},
		{"help", "help\n", []string{"Available commands:", "sqrt <a>"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := runREPL(t, REPLConfig{Timeout: 10 * time.Second}, tt.input+"exit\n")
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestREPLCommandTimeout(t *testing.T) {
	t.Parallel()
	out := runREPL(t, REPLConfig{Timeout: time.Nanosecond}, "next 10000000000000000000000000000000000000000000000000\nexit\n")
	if !strings.Contains(out, `operation "next" timed out after 1ns`) {
		t.Errorf("missing timeout report:\n%s", out)
	}
}

func TestREPLSearchErrorKeepsCommandVerbatim(t *testing.T) {
	t.Parallel()
	r := NewREPL(REPLConfig{Timeout: time.Second})

	err := r.searchError("next%d", errors.New("boom"))
	if err == nil || err.Error() != "next%d: boom" {
		t.Errorf("searchError() = %v, want %q", err, "next%d: boom")
	}

	err = r.searchError("prime", context.DeadlineExceeded)
	var te apperrors.TimeoutError
	if !errors.As(err, &te) || te.Operation != "prime" {
		t.Errorf("searchError(deadline) = %v, want TimeoutError for prime", err)
	}
}

func TestREPLExit(t *testing.T) {
	t.Parallel()
	out := runREPL(t, REPLConfig{}, "quit\nadd 2 3\n")
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("missing goodbye:\n%s", out)
	}
	if strings.Contains(out, "  = 5") {
		t.Error("commands after quit were executed")
	}
}

func TestREPLEOF(t *testing.T) {
	t.Parallel()
	out := runREPL(t, REPLConfig{}, "add 2 3")
	if !strings.Contains(out, "  = 5\n") {
		t.Errorf("last line without newline not executed:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("missing goodbye on EOF:\n%s", out)
	}
}

func TestREPLBitLayout(t *testing.T) {
	t.Parallel()
	out := runREPL(t, REPLConfig{Layout: largeuint.BitLayout}, "mul 65535 65537\nstatus\nexit\n")
	if !strings.Contains(out, "  = 4,294,967,295\n") {
		t.Errorf("bit layout product missing:\n%s", out)
	}
	if !strings.Contains(out, "1-bit limbs x 200") {
		t.Errorf("status missing layout:\n%s", out)
	}
}
