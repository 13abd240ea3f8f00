// Package prime finds primes near a starting value by trial division on the
// largeuint engine, optionally screened by a probabilistic test.
//
// Searches are synchronous. They observe cancellation through the context
// every Options.SampleInterval divisions and publish progress milestones,
// one for every fiftieth of the divisor range of the current candidate.
package prime

import (
	"time"

	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/metrics"
	"github.com/agbru/primecalc/internal/progress"
)

// Status is the verdict on a candidate.
type Status int

const (
	// NotPrime means a divisor was found or the probabilistic test failed.
	NotPrime Status = iota
	// ProbablePrime means the probabilistic test passed and trial division
	// ran out of time without finding a divisor.
	ProbablePrime
	// Prime means trial division exhausted every divisor.
	Prime
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case NotPrime:
		return "not prime"
	case ProbablePrime:
		return "probable prime"
	case Prime:
		return "prime"
	}
	return "unknown"
}

const (
	// DefaultSampleInterval is the number of divisions between cancellation
	// and deadline checks.
	DefaultSampleInterval = 10000
	// Milestones is the number of progress notifications per candidate.
	Milestones = 50
	// MillerRabinRounds is the number of rounds used by Verify.
	MillerRabinRounds = 100
)

// Options tunes a search. The zero value is usable.
type Options struct {
	// SampleInterval is the number of divisions between context checks.
	SampleInterval int
	// MaxCandidates stops the search with apperrors.NotFoundError after that
	// many composite candidates. Zero means unbounded.
	MaxCandidates uint64
	// Progress receives milestone notifications. It may be nil.
	Progress progress.ProgressCallback
	// Logger receives debug traces of the search. It may be nil.
	Logger logging.Logger
	// Metrics counts candidates, divisions and primes. It may be nil.
	Metrics *metrics.SearchMetrics
	// Mode labels the metrics.
	Mode string
}

func (o Options) withDefaults() Options {
	if o.SampleInterval <= 0 {
		o.SampleInterval = DefaultSampleInterval
	}
	if o.Logger == nil {
		o.Logger = logging.NewNopLogger()
	}
	if o.Mode == "" {
		o.Mode = "search"
	}
	return o
}

// Result describes a completed search.
type Result struct {
	// Prime is the value found.
	Prime *largeuint.Uint
	// Status is Prime for trial division results; probabilistic searches
	// may report ProbablePrime.
	Status Status
	// Candidates is the number of candidates examined, the result included.
	Candidates uint64
	// Divisions is the number of trial divisions performed.
	Divisions uint64
	// Duration is the wall time of the search.
	Duration time.Duration
}
