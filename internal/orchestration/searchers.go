package orchestration

import (
	"context"
	"time"

	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/progress"
)

// NearbySearch finds the first prime at or above Start by trial division.
type NearbySearch struct {
	Label   string
	Start   *largeuint.Uint
	Options prime.Options
	// Observer, when set, sees every update next to the progress channel.
	Observer progress.ProgressObserver
}

// Name implements Searcher.
func (s NearbySearch) Name() string { return s.Label }

// StartValue implements Searcher.
func (s NearbySearch) StartValue() *largeuint.Uint { return s.Start }

// Search implements Searcher.
func (s NearbySearch) Search(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int) (prime.Result, error) {
	opts := s.Options
	opts.Progress = fanOut(progressChan, index, s.Observer)
	return prime.FindNearbyPrime(ctx, s.Start, opts)
}

// ProbableSearch finds the first candidate at or above Start that passes the
// probabilistic test, proving it by trial division for at most Limit.
type ProbableSearch struct {
	Label    string
	Start    *largeuint.Uint
	Limit    time.Duration
	Options  prime.Options
	Observer progress.ProgressObserver
}

// Name implements Searcher.
func (s ProbableSearch) Name() string { return s.Label }

// StartValue implements Searcher.
func (s ProbableSearch) StartValue() *largeuint.Uint { return s.Start }

// Search implements Searcher.
func (s ProbableSearch) Search(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int) (prime.Result, error) {
	opts := s.Options
	opts.Progress = fanOut(progressChan, index, s.Observer)
	return prime.FindProbablePrime(ctx, s.Start, s.Limit, opts)
}

// fanOut returns a callback delivering updates to progressChan and to the
// optional observer.
func fanOut(progressChan chan<- progress.ProgressUpdate, index int, observer progress.ProgressObserver) progress.ProgressCallback {
	subject := progress.NewProgressSubject()
	if progressChan != nil {
		subject.Register(progress.NewChannelObserver(progressChan))
	}
	subject.Register(observer)
	return subject.Freeze(index)
}
