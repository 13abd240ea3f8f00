package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemoryCollector_Delta(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()

	buf := make([]byte, 1<<20)
	_ = buf[len(buf)-1]

	after := mc.Snapshot()
	if after.Sys < before.Sys {
		t.Error("Sys should not decrease between snapshots")
	}
}

func TestMemoryCollector_Collect(t *testing.T) {
	t.Parallel()

	if n := testutil.CollectAndCount(NewMemoryCollector()); n != 3 {
		t.Errorf("collected %d metrics, want 3", n)
	}
	problems, err := testutil.CollectAndLint(NewMemoryCollector())
	if err != nil {
		t.Fatalf("CollectAndLint() error = %v", err)
	}
	for _, p := range problems {
		t.Errorf("lint: %s: %s", p.Metric, p.Text)
	}
}
