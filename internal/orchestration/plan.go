package orchestration

import (
	"fmt"
	"strings"

	"github.com/agbru/primecalc/internal/config"
	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/progress"
)

// ParseStart decodes a starting value. Values containing an underscore are
// read in the hex persistence format, others in decimal. An empty string is
// zero.
func ParseStart(layout largeuint.Layout, s string) (*largeuint.Uint, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return largeuint.New(layout, 0)
	case strings.Contains(s, "_"):
		return largeuint.ParseHex(layout, s)
	}
	return largeuint.ParseDecimal(layout, s)
}

// PlanSearches returns the searches run by the next, random and probable
// modes.
//
//   - next: one NearbySearch from cfg.Start.
//   - random: cfg.Workers NearbySearch values, each from a random candidate
//     of cfg.Bytes bytes drawn from its own stream of cfg.Seed.
//   - probable: one ProbableSearch from a random decimal of cfg.Digits
//     digits, bounded by cfg.TrialLimit per candidate.
//
// opts is shared by every search; observer may be nil.
func PlanSearches(cfg config.AppConfig, opts prime.Options, observer progress.ProgressObserver) ([]Searcher, error) {
	layout := cfg.Layout()
	opts.Mode = cfg.Mode
	if opts.SampleInterval == 0 {
		opts.SampleInterval = cfg.SampleInterval
	}

	switch cfg.Mode {
	case config.ModeNext:
		start, err := ParseStart(layout, cfg.Start)
		if err != nil {
			return nil, fmt.Errorf("start value %q: %w", cfg.Start, err)
		}
		return []Searcher{NearbySearch{Label: "next", Start: start, Options: opts, Observer: observer}}, nil

	case config.ModeRandom:
		searches := make([]Searcher, 0, cfg.Workers)
		for i := range cfg.Workers {
			src, err := prime.NewRandomSource(cfg.Seed, uint32(i))
			if err != nil {
				return nil, err
			}
			start, err := prime.RandomCandidate(layout, cfg.Bytes, src)
			if err != nil {
				return nil, err
			}
			searches = append(searches, NearbySearch{
				Label:    fmt.Sprintf("worker %d", i+1),
				Start:    start,
				Options:  opts,
				Observer: observer,
			})
		}
		return searches, nil

	case config.ModeProbable:
		src, err := prime.NewRandomSource(cfg.Seed, 0)
		if err != nil {
			return nil, err
		}
		start, err := prime.RandomDecimal(layout, cfg.Digits, src)
		if err != nil {
			return nil, err
		}
		return []Searcher{ProbableSearch{
			Label:    "probable",
			Start:    start,
			Limit:    cfg.TrialLimit(),
			Options:  opts,
			Observer: observer,
		}}, nil
	}
	return nil, fmt.Errorf("mode %q does not plan searches", cfg.Mode)
}
