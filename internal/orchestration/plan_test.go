package orchestration

import (
	"errors"
	"testing"

	"github.com/agbru/primecalc/internal/config"
	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/progress"
)

func TestParseStart(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 0},
		{"  ", 0},
		{"0100_0D", 13},
		{"0200_0C63 # int value: 25356", 25356},
		{"1000000", 1000000},
		{"007", 7},
	}
	for _, tt := range tests {
		x, err := ParseStart(largeuint.ByteLayout, tt.in)
		if err != nil {
			t.Fatalf("ParseStart(%q): %v", tt.in, err)
		}
		if v, _ := x.Uint64(); v != tt.want {
			t.Errorf("ParseStart(%q) = %s, want %d", tt.in, x, tt.want)
		}
	}
	if _, err := ParseStart(largeuint.ByteLayout, "12a"); !errors.Is(err, largeuint.ErrMalformed) {
		t.Errorf("ParseStart(12a) error = %v, want ErrMalformed", err)
	}
}

func baseConfig(mode string) config.AppConfig {
	return config.AppConfig{
		Mode:           mode,
		Bytes:          4,
		Digits:         12,
		Minutes:        1,
		Workers:        3,
		Seed:           42,
		LayoutName:     config.LayoutByte,
		SampleInterval: 500,
	}
}

func TestPlanSearchesNext(t *testing.T) {
	t.Parallel()
	cfg := baseConfig(config.ModeNext)
	cfg.Start = "0100_0D"
	searches, err := PlanSearches(cfg, prime.Options{}, progress.NewNoOpObserver())
	if err != nil {
		t.Fatal(err)
	}
	if len(searches) != 1 {
		t.Fatalf("got %d searches, want 1", len(searches))
	}
	s, ok := searches[0].(NearbySearch)
	if !ok {
		t.Fatalf("search is %T, want NearbySearch", searches[0])
	}
	if v, _ := s.Start.Uint64(); v != 13 {
		t.Errorf("start = %s, want 13", s.Start)
	}
	if s.Options.Mode != config.ModeNext || s.Options.SampleInterval != 500 {
		t.Errorf("options = %+v", s.Options)
	}
}

func TestPlanSearchesRandom(t *testing.T) {
	t.Parallel()
	cfg := baseConfig(config.ModeRandom)
	first, err := PlanSearches(cfg, prime.Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := PlanSearches(cfg, prime.Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != cfg.Workers {
		t.Fatalf("got %d searches, want %d", len(first), cfg.Workers)
	}
	for i := range first {
		a, b := first[i].StartValue(), second[i].StartValue()
		if a.BitLen() > 32 {
			t.Errorf("worker %d start %s exceeds 4 bytes", i, a)
		}
		if !largeuint.Equal(a, b) {
			t.Errorf("worker %d: seeded starts differ: %s vs %s", i, a, b)
		}
	}
	if largeuint.Equal(first[0].StartValue(), first[1].StartValue()) {
		t.Error("workers share a start value")
	}
	if first[1].Name() != "worker 2" {
		t.Errorf("Name() = %q", first[1].Name())
	}
}

func TestPlanSearchesProbable(t *testing.T) {
	t.Parallel()
	cfg := baseConfig(config.ModeProbable)
	searches, err := PlanSearches(cfg, prime.Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	s, ok := searches[0].(ProbableSearch)
	if !ok {
		t.Fatalf("search is %T, want ProbableSearch", searches[0])
	}
	if s.Limit != cfg.TrialLimit() {
		t.Errorf("Limit = %v, want %v", s.Limit, cfg.TrialLimit())
	}
	if len(s.Start.String()) > 12 {
		t.Errorf("start %s has more than 12 digits", s.Start)
	}
}

func TestPlanSearchesErrors(t *testing.T) {
	t.Parallel()
	bad := baseConfig(config.ModeNext)
	bad.Start = "0300_50"
	if _, err := PlanSearches(bad, prime.Options{}, nil); !errors.Is(err, largeuint.ErrMalformed) {
		t.Errorf("truncated start: error = %v", err)
	}
	if _, err := PlanSearches(baseConfig(config.ModeSqrt), prime.Options{}, nil); err == nil {
		t.Error("sqrt mode should not plan searches")
	}
}
