package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics. It is also a
// prometheus.Collector exporting the snapshot under the primecalc_ prefix.
type MemoryCollector struct {
	heapAlloc   *prometheus.Desc
	heapObjects *prometheus.Desc
	numGC       *prometheus.Desc
}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{
		heapAlloc:   prometheus.NewDesc(namespace+"_heap_alloc_bytes", "Bytes of allocated heap objects.", nil, nil),
		heapObjects: prometheus.NewDesc(namespace+"_heap_objects", "Number of allocated heap objects.", nil, nil),
		numGC:       prometheus.NewDesc(namespace+"_gc_cycles_total", "Completed GC cycles.", nil, nil),
	}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Describe implements prometheus.Collector.
func (mc *MemoryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- mc.heapAlloc
	ch <- mc.heapObjects
	ch <- mc.numGC
}

// Collect implements prometheus.Collector.
func (mc *MemoryCollector) Collect(ch chan<- prometheus.Metric) {
	snap := mc.Snapshot()
	ch <- prometheus.MustNewConstMetric(mc.heapAlloc, prometheus.GaugeValue, float64(snap.HeapAlloc))
	ch <- prometheus.MustNewConstMetric(mc.heapObjects, prometheus.GaugeValue, float64(snap.HeapObjects))
	ch <- prometheus.MustNewConstMetric(mc.numGC, prometheus.CounterValue, float64(snap.NumGC))
}
