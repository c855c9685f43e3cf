// Package sysmon provides system-wide CPU and memory usage sampling for
// the TUI header and the HTTP health endpoint.
package sysmon

import (
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Monitor samples system stats on a fixed interval in the background.
// Readers get the latest snapshot without paying the sampling cost.
type Monitor struct {
	interval time.Duration
	mu       sync.RWMutex
	latest   Stats
	stop     chan struct{}
	done     chan struct{}
}

// NewMonitor creates a monitor sampling every interval. Start must be
// called before Latest returns live data.
func NewMonitor(interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = time.Second
	}
	return &Monitor{
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sampling loop. It takes one immediate sample so the
// first Latest call already has data.
func (m *Monitor) Start() {
	m.record(Sample())
	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.record(Sample())
			case <-m.stop:
				return
			}
		}
	}()
}

// Latest returns the most recent snapshot.
func (m *Monitor) Latest() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest
}

// Stop terminates the sampling loop and waits for it to exit. Safe to
// call only once.
func (m *Monitor) Stop() {
	close(m.stop)
	<-m.done
}

func (m *Monitor) record(s Stats) {
	m.mu.Lock()
	m.latest = s
	m.mu.Unlock()
}
