// Package profiler tracks update loop timing and memory statistics for hosts
// embedding the camera rig, logging a summary line at a fixed interval.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler aggregates per-tick camera update costs and process memory stats.
// Feed it one Sample per update loop iteration.
type Profiler struct {
	tickCount      int
	updateTotal    time.Duration
	updateMax      time.Duration
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// ProfilerOption configures a Profiler during NewProfiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often the profiler flushes a stats line to the log.
//
// Parameters:
//   - interval: time between log lines
//
// Returns:
//   - ProfilerOption: the configured option
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// NewProfiler creates a new Profiler with default settings.
// Flush interval defaults to 1 second.
//
// Parameters:
//   - opts: variadic list of ProfilerOption functions to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(opts ...ProfilerOption) *Profiler {
	p := &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Sample records one update loop iteration and the time the camera update
// took. Logs aggregate statistics when the flush interval has elapsed:
// ticks per second, average and worst update cost, heap usage, allocation
// rate, and GC pause times.
//
// Parameters:
//   - updateCost: how long this tick's camera update took
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Sample(updateCost time.Duration) bool {
	p.tickCount++
	p.updateTotal += updateCost
	if updateCost > p.updateMax {
		p.updateMax = updateCost
	}

	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	ticksPerSec := float64(p.tickCount) / elapsed.Seconds()
	avgUpdateUs := p.updateTotal.Microseconds() / int64(p.tickCount)

	runtime.ReadMemStats(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	// Calculate allocation rate (MB/sec)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// Calculate GC pause stats (last pause and max recent pause)
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		// Find max pause since last flush
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	log.Printf("[Profiler] Ticks: %.2f/s | Update: avg %d µs, max %d µs | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		ticksPerSec, avgUpdateUs, p.updateMax.Microseconds(), allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.tickCount = 0
	p.updateTotal = 0
	p.updateMax = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
