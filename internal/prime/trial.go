package prime

import (
	"context"
	"fmt"
	"time"

	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/progress"
)

type trialOutcome int

const (
	trialComposite trialOutcome = iota
	trialExhausted
	trialTimedOut
)

// searcher holds the counters shared by the candidates of one search.
type searcher struct {
	opts       Options
	candidates uint64
	divisions  uint64
}

func newSearcher(opts Options) *searcher {
	return &searcher{opts: opts.withDefaults()}
}

// trialDivide divides candidate by 3, 5, 7, ... up to its ceiling square
// root. The candidate must be odd and at least 3. A zero deadline never
// expires.
func (s *searcher) trialDivide(ctx context.Context, candidate *largeuint.Uint, deadline time.Time) (trialOutcome, error) {
	layout := candidate.Layout()
	limit, err := largeuint.ApproximateSqrt(candidate)
	if err != nil {
		return 0, err
	}
	fifty, err := largeuint.FromUint64(layout, Milestones)
	if err != nil {
		return 0, err
	}
	step, _, err := largeuint.Divide(limit, fifty)
	if err != nil {
		return 0, err
	}
	next := step.Clone()
	divisor, err := largeuint.FromUint64(layout, 3)
	if err != nil {
		return 0, err
	}

	text := candidate.String()
	s.opts.Logger.Debug("trying candidate",
		logging.String("candidate", text),
		logging.String("max_divisor", largeuint.FormatHex(limit)))
	s.report(text, 0)

	start := s.divisions
	defer func() { s.opts.Metrics.AddDivisions(s.opts.Mode, s.divisions-start) }()

	interval := uint64(s.opts.SampleInterval)
	milestone := 0
	for largeuint.LessOrEqual(divisor, limit) {
		rem, err := largeuint.Modulo(candidate, divisor)
		if err != nil {
			return 0, err
		}
		s.divisions++
		if rem.IsZero() {
			s.opts.Logger.Debug("divisor found",
				logging.String("candidate", text),
				logging.String("divisor", divisor.String()))
			return trialComposite, nil
		}
		if s.divisions%interval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			if !deadline.IsZero() && time.Now().After(deadline) {
				return trialTimedOut, nil
			}
		}
		if err := largeuint.AddSmall(2, divisor); err != nil {
			return 0, fmt.Errorf("next divisor: %w", err)
		}
		if step.IsZero() {
			continue
		}
		passed := milestone
		for milestone < Milestones && !largeuint.LessThan(divisor, next) {
			milestone++
			if err := largeuint.Add(step, next); err != nil {
				return 0, fmt.Errorf("next milestone: %w", err)
			}
		}
		if milestone != passed {
			s.report(text, float64(milestone)/Milestones)
		}
	}
	if milestone < Milestones {
		s.report(text, 1)
	}
	return trialExhausted, nil
}

func (s *searcher) report(candidate string, value float64) {
	if s.opts.Progress == nil {
		return
	}
	s.opts.Progress(progress.ProgressUpdate{
		Value:      value,
		Candidate:  candidate,
		Candidates: s.candidates,
		Divisions:  s.divisions,
	})
}

// makeOdd returns an odd copy of start that is at least 3, or 2 when start
// is below 3.
func makeOdd(start *largeuint.Uint) (*largeuint.Uint, bool, error) {
	three, err := largeuint.FromUint64(start.Layout(), 3)
	if err != nil {
		return nil, false, err
	}
	if largeuint.LessThan(start, three) {
		two, err := largeuint.FromUint64(start.Layout(), 2)
		return two, true, err
	}
	candidate := start.Clone()
	candidate.Trim()
	if candidate.IsEven() {
		if err := largeuint.Increment(candidate); err != nil {
			return nil, false, err
		}
	}
	return candidate, false, nil
}
