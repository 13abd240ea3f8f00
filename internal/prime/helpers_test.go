package prime

import (
	"testing"

	"github.com/agbru/primecalc/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func testutilRegistry(t testing.TB, m *metrics.SearchMetrics) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()
	if err := m.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return reg
}
