package prime

import (
	"context"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Verify screens candidate with MillerRabinRounds rounds of Miller-Rabin
// and, when it passes, tries to prove it by trial division for at most
// limit. The limit is checked every Options.SampleInterval divisions, so it
// may be overrun by one sampling period.
func Verify(ctx context.Context, candidate *largeuint.Uint, limit time.Duration, opts Options) (Status, error) {
	s := newSearcher(opts)
	return s.verify(ctx, candidate, limit)
}

func (s *searcher) verify(ctx context.Context, candidate *largeuint.Uint, limit time.Duration) (Status, error) {
	if !ProbablyPrime(candidate, MillerRabinRounds) {
		return NotPrime, nil
	}
	if v, ok := candidate.Uint64(); ok && v == 2 {
		return Prime, nil
	}
	s.opts.Logger.Debug("starting prime verification",
		logging.String("candidate", candidate.String()),
		logging.Duration("limit", limit))

	outcome, err := s.trialDivide(ctx, candidate, time.Now().Add(limit))
	if err != nil {
		return NotPrime, err
	}
	switch outcome {
	case trialExhausted:
		return Prime, nil
	case trialTimedOut:
		return ProbablePrime, nil
	}
	return NotPrime, nil
}

// FindProbablePrime returns the first candidate at or above start that
// Verify does not reject. The result status is Prime when trial division
// finished within limit and ProbablePrime otherwise.
func FindProbablePrime(ctx context.Context, start *largeuint.Uint, limit time.Duration, opts Options) (Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "prime.FindProbablePrime",
		trace.WithAttributes(
			attribute.Int("start.bits", start.BitLen()),
			attribute.String("limit", limit.String())))
	defer span.End()

	begin := time.Now()
	s := newSearcher(opts)
	s.opts.Metrics.SearchStarted()
	defer s.opts.Metrics.SearchFinished()

	candidate, small, err := makeOdd(start)
	if err != nil {
		return Result{}, s.fail(span, "", err)
	}
	if small {
		s.candidates = 1
		return s.succeed(span, candidate, Prime, begin), nil
	}

	for {
		s.candidates++
		s.opts.Metrics.ObserveCandidate(s.opts.Mode)
		status, err := s.verify(ctx, candidate, limit)
		if err != nil {
			return Result{}, s.fail(span, candidate.String(), err)
		}
		if status != NotPrime {
			return s.succeed(span, candidate, status, begin), nil
		}
		if err := ctx.Err(); err != nil {
			return Result{}, s.fail(span, candidate.String(), err)
		}
		s.opts.Logger.Debug("trying new candidate", logging.Uint64("count", s.candidates+1))
		if s.opts.MaxCandidates > 0 && s.candidates >= s.opts.MaxCandidates {
			return Result{}, s.fail(span, candidate.String(), apperrors.NotFoundError{Tried: s.candidates})
		}
		if err := largeuint.AddSmall(2, candidate); err != nil {
			return Result{}, s.fail(span, candidate.String(), err)
		}
	}
}
