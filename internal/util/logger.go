package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Log logs a message if verbose is true.
func Log(verbose bool, format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// ProgressLogger tracks and prints percent progress over a fixed number of
// events. Log may be called from many goroutines.
type ProgressLogger struct {
	totalEvents uint64
	prefix      string
	suffix      string
	logStep     uint64
	enabled     bool
	startTime   time.Time
	out         io.Writer

	loggedEvents atomic.Uint64
	mu           sync.Mutex // serializes writes to out
	lastUpdate   time.Time
}

// NewProgressLogger creates a new progress logger writing to stdout.
func NewProgressLogger(totalEvents uint64, prefix, suffix string, enable bool) *ProgressLogger {
	return NewProgressLoggerTo(os.Stdout, totalEvents, prefix, suffix, enable)
}

// NewProgressLoggerTo creates a progress logger writing to w.
func NewProgressLoggerTo(w io.Writer, totalEvents uint64, prefix, suffix string, enable bool) *ProgressLogger {
	pl := &ProgressLogger{
		totalEvents: totalEvents,
		prefix:      prefix,
		suffix:      suffix,
		enabled:     enable,
		startTime:   time.Now(),
		out:         w,
	}

	percFraction := uint64(20) // 5% steps
	if totalEvents >= 100_000 {
		percFraction = 100 // 1% steps for long sweeps
	}
	pl.logStep = (totalEvents + percFraction - 1) / percFraction
	if pl.logStep == 0 {
		pl.logStep = 1
	}

	if enable {
		pl.print(0, false)
	}
	return pl
}

// Log records one event and prints when a step boundary is crossed.
func (pl *ProgressLogger) Log() {
	pl.Add(1)
}

// Add records n events at once.
func (pl *ProgressLogger) Add(n uint64) {
	if !pl.enabled || n == 0 {
		return
	}
	after := pl.loggedEvents.Add(n)
	before := after - n
	if before/pl.logStep != after/pl.logStep {
		pl.print(after, false)
	}
}

// Logged returns the number of events recorded so far.
func (pl *ProgressLogger) Logged() uint64 {
	return pl.loggedEvents.Load()
}

// Finalize prints the 100% progress update with the elapsed time.
func (pl *ProgressLogger) Finalize() {
	if !pl.enabled {
		return
	}
	pl.print(pl.totalEvents, true)
}

func (pl *ProgressLogger) print(events uint64, final bool) {
	perc := uint64(100)
	if pl.totalEvents > 0 {
		if events > pl.totalEvents {
			events = pl.totalEvents
		}
		perc = (100 * events) / pl.totalEvents
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()
	now := time.Now()
	if !final && now.Sub(pl.lastUpdate) < 100*time.Millisecond && events != 0 {
		return // at most 10 updates/sec
	}
	pl.lastUpdate = now
	fmt.Fprintf(pl.out, "\r%s%d%%%s", pl.prefix, perc, pl.suffix)
	if final {
		fmt.Fprintf(pl.out, " (%.2fs) \n", time.Since(pl.startTime).Seconds())
	}
}
