package prime

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/agbru/primecalc/internal/prime"

// FindNearbyPrime returns the smallest prime greater than or equal to start,
// proven by trial division. Even starts are moved to the next odd value;
// starts below 3 yield 2. Every candidate with a divisor is replaced by the
// next odd value and the divisors restart from 3.
//
// Errors are apperrors.SearchError values naming the candidate under test;
// they wrap the context error on cancellation, largeuint.ErrCapacityExceeded
// when the candidate outgrows its layout, and apperrors.NotFoundError when
// Options.MaxCandidates is reached.
func FindNearbyPrime(ctx context.Context, start *largeuint.Uint, opts Options) (Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "prime.FindNearbyPrime",
		trace.WithAttributes(attribute.Int("start.bits", start.BitLen())))
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
		if err := ctx.Err(); err != nil {
			return Result{}, s.fail(span, candidate.String(), err)
		}
		s.candidates++
		s.opts.Metrics.ObserveCandidate(s.opts.Mode)
		outcome, err := s.trialDivide(ctx, candidate, time.Time{})
		if err != nil {
			return Result{}, s.fail(span, candidate.String(), err)
		}
		if outcome == trialExhausted {
			return s.succeed(span, candidate, Prime, begin), nil
		}
		if s.opts.MaxCandidates > 0 && s.candidates >= s.opts.MaxCandidates {
			return Result{}, s.fail(span, candidate.String(), apperrors.NotFoundError{Tried: s.candidates})
		}
		if err := largeuint.AddSmall(2, candidate); err != nil {
			return Result{}, s.fail(span, candidate.String(), err)
		}
	}
}

func (s *searcher) succeed(span trace.Span, p *largeuint.Uint, status Status, begin time.Time) Result {
	res := Result{
		Prime:      p,
		Status:     status,
		Candidates: s.candidates,
		Divisions:  s.divisions,
		Duration:   time.Since(begin),
	}
	span.SetAttributes(
		attribute.String("result.status", status.String()),
		attribute.Int64("result.candidates", int64(res.Candidates)),
		attribute.Int64("result.divisions", int64(res.Divisions)),
	)
	s.opts.Metrics.ObservePrime(s.opts.Mode, res.Duration)
	s.opts.Logger.Info("prime found",
		logging.String("prime", p.String()),
		logging.String("status", status.String()),
		logging.Uint64("candidates", res.Candidates),
		logging.Uint64("divisions", res.Divisions),
		logging.Duration("duration", res.Duration))
	return res
}

func (s *searcher) fail(span trace.Span, candidate string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if !apperrors.IsContextError(err) && !errors.As(err, new(apperrors.NotFoundError)) {
		s.opts.Logger.Error("search failed", err, logging.String("candidate", candidate))
	}
	return apperrors.SearchError{Candidate: candidate, Cause: err}
}
