package config

import "runtime"

// Worker count resolution chain (highest priority first):
//   1. CLI flag (--workers)
//   2. Environment variable (PRIMECALC_WORKERS)
//   3. Hardware estimation (this file)

// ApplyAdaptiveDefaults fills the settings left at their zero default with
// values derived from the hardware. User-specified values are preserved.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateOptimalWorkers()
	}
	return cfg
}

// EstimateOptimalWorkers returns the number of concurrent random searches
// to run. Each search is CPU bound and single-threaded, so one per core is
// the ceiling; a core is left free for the UI on larger machines.
func EstimateOptimalWorkers() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return numCPU
	case numCPU <= 8:
		return numCPU - 1
	default:
		return 8
	}
}
