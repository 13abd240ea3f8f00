package tui

import (
	"context"
	"testing"

	"github.com/agbru/primecalc/internal/largeuint"
	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/progress"
)

func mustUint(t *testing.T, v uint64) *largeuint.Uint {
	t.Helper()
	x, err := largeuint.FromUint64(largeuint.ByteLayout, v)
	if err != nil {
		t.Fatalf("FromUint64(%d): %v", v, err)
	}
	return x
}

// stubSearch returns a fixed result after reporting a single update.
type stubSearch struct {
	name   string
	result prime.Result
	err    error
}

func (s stubSearch) Name() string { return s.name }

func (s stubSearch) StartValue() *largeuint.Uint { return s.result.Prime }

func (s stubSearch) Search(ctx context.Context, progressChan chan<- progress.ProgressUpdate, index int) (prime.Result, error) {
	select {
	case progressChan <- progress.ProgressUpdate{WorkerIndex: index, Value: 1, Candidate: "13", Candidates: 1}:
	default:
	}
	if err := ctx.Err(); err != nil {
		return prime.Result{}, err
	}
	return s.result, s.err
}
