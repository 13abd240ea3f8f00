package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	t.Parallel()
	testErr := errors.New("division by zero")
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("mode", "next"), "mode", "next"},
		{"Int", Int("worker", 3), "worker", 3},
		{"Uint64", Uint64("divisions", 12345678901234567890), "divisions", uint64(12345678901234567890)},
		{"Float64", Float64("progress", 0.42), "progress", 0.42},
		{"Duration", Duration("elapsed", time.Second), "elapsed", time.Second},
		{"Err", Err(testErr), "error", testErr},
		{"Err with nil", Err(nil), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}
}

// TestNewZerologAdapter tests the ZerologAdapter constructor.
func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))
	if adapter == nil {
		t.Fatal("NewZerologAdapter returned nil")
	}

	adapter.Info("candidate accepted")
	if !strings.Contains(buf.String(), "candidate accepted") {
		t.Errorf("NewZerologAdapter logger not working, output: %s", buf.String())
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "prime")
	logger.Info("search started")

	output := buf.String()
	if !strings.Contains(output, `"component":"prime"`) {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "search started") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

// TestNewLevelLogger tests level filtering and the console writer.
func TestNewLevelLogger(t *testing.T) {
	t.Run("info level drops debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLevelLogger(&buf, "app", "info", false)
		if err != nil {
			t.Fatal(err)
		}
		logger.Debug("hidden")
		logger.Info("shown")
		if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})

	t.Run("debug level in console form", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLevelLogger(&buf, "app", "DEBUG", true)
		if err != nil {
			t.Fatal(err)
		}
		logger.Debug("restart", Uint64("divisor", 7))
		output := buf.String()
		if !strings.Contains(output, "restart") || !strings.Contains(output, "divisor=7") {
			t.Errorf("unexpected console output: %s", output)
		}
		if strings.HasPrefix(strings.TrimSpace(output), "{") {
			t.Errorf("console output should not be JSON: %s", output)
		}
	})

	t.Run("empty level means info", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLevelLogger(&buf, "app", "", false)
		if err != nil {
			t.Fatal(err)
		}
		logger.Debug("hidden")
		if buf.Len() != 0 {
			t.Errorf("debug entry written at default level: %s", buf.String())
		}
	})

	t.Run("unknown level", func(t *testing.T) {
		if _, err := NewLevelLogger(&bytes.Buffer{}, "app", "loud", false); err == nil {
			t.Error("expected an error for an unknown level")
		}
	})
}

// TestNewNopLogger tests that the nop logger accepts every call.
func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("x")
	logger.Error("x", errors.New("y"))
	logger.Debug("x")
	logger.Printf("%d", 1)
	logger.Println("x")
}

// TestZerologAdapter_With tests that child loggers carry their fields.
func TestZerologAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "orchestration").With(Int("worker", 2))
	logger.Info("prime found", String("value", "25356"))

	output := buf.String()
	for _, want := range []string{`"worker":2`, `"value":"25356"`, "prime found"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

// TestZerologAdapter_Levels tests the Info, Error and Debug methods.
func TestZerologAdapter_Levels(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info with fields",
			log:      func(l Logger) { l.Info("candidate tried", String("mode", "next"), Int("divisors", 200)) },
			contains: []string{"candidate tried", "info", "next", "200"},
		},
		{
			name:     "error with cause",
			log:      func(l Logger) { l.Error("append failed", errors.New("permission denied"), String("file", "primes")) },
			contains: []string{"append failed", "permission denied", "error", "primes"},
		},
		{
			name:     "error with nil cause",
			log:      func(l Logger) { l.Error("warning", nil) },
			contains: []string{"warning", "error"},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("milestone", Float64("progress", 0.5)) },
			contains: []string{"milestone", "debug", "0.5"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("found %s after %d restarts", "25357", 4) },
			contains: []string{"found 25357 after 4 restarts"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("prime", 13) },
			contains: []string{"prime 13"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))
			tt.log(logger)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int field", Field{Key: "num", Value: 42}, "42"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"duration field", Field{Key: "elapsed", Value: 1500 * time.Millisecond}, "1500"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info("test", tt.field)

			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, buf.String())
			}
		})
	}
}

// TestStdLoggerAdapter tests every method of the standard library adapter.
func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info",
			log:      func(l Logger) { l.Info("resume", String("file", "primes")) },
			contains: []string{"[INFO]", "resume", "file=primes"},
		},
		{
			name:     "error",
			log:      func(l Logger) { l.Error("parse failed", errors.New("malformed input"), Int("line", 3)) },
			contains: []string{"[ERROR]", "parse failed", "malformed input", "line=3"},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("trace") },
			contains: []string{"[DEBUG]", "trace"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("value is %d", 123) },
			contains: []string{"value is 123"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("a", "b", "c") },
			contains: []string{"a b c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			adapter := NewStdLoggerAdapter(log.New(&buf, "", 0))
			tt.log(adapter)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestLoggerInterface verifies both adapters implement the Logger interface.
func TestLoggerInterface(t *testing.T) {
	var _ Logger = NewLogger(&bytes.Buffer{}, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&bytes.Buffer{}, "", 0))
}
