// Package metrics reads Go runtime memory statistics so a verbose run can
// report the allocation cost of a multiplication.
package metrics

import (
	"fmt"
	"runtime"

	"github.com/agbru/karatcalc/internal/format"
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

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
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

// Delta reports the change between two snapshots taken around an
// operation. Counters that can only grow (NumGC, PauseTotalNs) are
// differenced; gauges keep the after value.
func Delta(before, after MemorySnapshot) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc:    after.HeapAlloc,
		HeapSys:      after.HeapSys,
		Sys:          after.Sys,
		NumGC:        after.NumGC - before.NumGC,
		PauseTotalNs: after.PauseTotalNs - before.PauseTotalNs,
		HeapObjects:  after.HeapObjects,
	}
}

// String renders the snapshot on one line for verbose output.
func (s MemorySnapshot) String() string {
	return fmt.Sprintf("heap=%s sys=%s objects=%d gc=%d pause=%dns",
		format.FormatBytes(s.HeapAlloc),
		format.FormatBytes(s.Sys),
		s.HeapObjects,
		s.NumGC,
		s.PauseTotalNs,
	)
}
