// Package sysmon samples system-wide CPU, memory and load for the dashboard.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	Load1      float64 // one-minute load average, 0 where unsupported
	Cores      int     // logical CPUs
}

// Sample collects a single snapshot. CPU uses interval=0 (delta since the
// last call). Fields whose source fails are left at zero.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	if avg, err := load.Avg(); err == nil && avg != nil {
		s.Load1 = avg.Load1
	}
	if n, err := cpu.Counts(true); err == nil {
		s.Cores = n
	}
	return s
}

// Saturated reports whether the machine has no idle core left, which is
// when adding search workers stops helping.
func (s Stats) Saturated() bool {
	return s.Cores > 0 && s.Load1 >= float64(s.Cores)
}
