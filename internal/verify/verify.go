// Package verify checks Divisor strategies against native int32 division.
package verify

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"divmagic/internal/core"
	"divmagic/internal/util"
)

// Report summarizes a completed check.
type Report struct {
	Divisor  int32
	Kind     core.Kind
	Seed     uint64 // zero for exhaustive sweeps
	Checked  uint64 // dividends compared, edge dividends included
	Duration time.Duration
}

func (r Report) String() string {
	return fmt.Sprintf("d=%d (%v): %d dividends OK in %v", r.Divisor, r.Kind, r.Checked, r.Duration)
}

// Divider is the strategy under test. core.Divisor implements it.
type Divider interface {
	Divide(n int32) int32
	Value() int32
	Kind() core.Kind
}

// dividendFunc maps a global work index to the dividend checked at it.
type dividendFunc func(i uint64) int32

// Check compares div.Divide against native division for the edge dividends
// of div and then for every dividend selected by cfg. The first mismatch
// found is returned as a core.MismatchError.
func Check(div Divider, cfg core.VerifyConfig) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("invalid verify config: %w", err)
	}
	start := time.Now()
	d := div.Value()
	report := Report{Divisor: d, Kind: div.Kind()}

	for _, n := range core.EdgeDividends(d) {
		report.Checked++
		if got, want := div.Divide(n), n/d; got != want {
			return report, core.MismatchError{Divisor: d, Dividend: n, Got: got, Want: want}
		}
	}

	var at dividendFunc
	total := cfg.NumChecked()
	if cfg.Exhaustive {
		at = func(i uint64) int32 { return int32(uint32(i)) }
	} else {
		seed := cfg.Seed
		if seed == core.InvalidSeed {
			seed = util.RandomSeed()
		}
		report.Seed = seed
		at = func(i uint64) int32 { return core.DividendAt(i, seed) }
	}

	util.Log(cfg.Verbose, "Checking %v (d=%d): %d dividends, exhaustive=%t, seed=%d, threads=%d",
		div.Kind(), d, total, cfg.Exhaustive, report.Seed, cfg.NumThreads)

	numChunks := core.NumChunks(total, cfg.ChunkSize)
	progress := util.NewProgressLogger(numChunks, fmt.Sprintf("d=%d: ", d), " checked", cfg.Verbose)

	var err error
	if cfg.NumThreads > 1 && numChunks >= uint64(cfg.NumThreads)*2 {
		util.Log(cfg.Verbose, "Using PARALLEL check with %d threads", cfg.NumThreads)
		err = checkParallel(div, at, total, &cfg, progress)
	} else {
		util.Log(cfg.Verbose, "Using SEQUENTIAL check")
		err = checkRange(div, at, 0, total, nil)
		progress.Add(numChunks)
	}
	progress.Finalize()

	report.Duration = time.Since(start)
	if err != nil {
		return report, err
	}
	report.Checked += total
	return report, nil
}

// checkRange compares dividends at indices [lo, hi). It returns early with a
// nil error when stop is set by another worker.
func checkRange(div Divider, at dividendFunc, lo, hi uint64, stop *atomic.Bool) error {
	d := div.Value()
	for i := lo; i < hi; i++ {
		if stop != nil && i&0xFFF == 0 && stop.Load() {
			return nil
		}
		n := at(i)
		if got, want := div.Divide(n), n/d; got != want {
			return core.MismatchError{Divisor: d, Dividend: n, Got: got, Want: want}
		}
	}
	return nil
}

func checkParallel(div Divider, at dividendFunc, total uint64, cfg *core.VerifyConfig, progress *util.ProgressLogger) error {
	numThreads := cfg.NumThreads
	numChunks := core.NumChunks(total, cfg.ChunkSize)

	var wg sync.WaitGroup
	wg.Add(numThreads)

	var nextChunk atomic.Uint64 // next chunk to be processed globally
	var stop atomic.Bool
	var errMu sync.Mutex
	var firstErr error

	worker := func(tid int) {
		defer wg.Done()
		for {
			chunk := nextChunk.Add(1) - 1
			if chunk >= numChunks || stop.Load() {
				return
			}
			lo := chunk * cfg.ChunkSize
			hi := min(lo+cfg.ChunkSize, total)
			if err := checkRange(div, at, lo, hi, &stop); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
					if cfg.Verbose {
						log.Printf("Worker %d found mismatch in chunk %d: %v", tid, chunk, err)
					}
				}
				errMu.Unlock()
				stop.Store(true)
				return
			}
			progress.Log()
		}
	}

	for tid := 0; tid < numThreads; tid++ {
		go worker(tid)
	}
	wg.Wait()
	return firstErr
}

// CheckAll runs Check for each divisor and joins every failure.
func CheckAll[D Divider](divs []D, cfg core.VerifyConfig) ([]Report, error) {
	reports := make([]Report, 0, len(divs))
	var errs []error
	for _, div := range divs {
		r, err := Check(div, cfg)
		if err != nil {
			errs = append(errs, fmt.Errorf("divisor %d: %w", div.Value(), err))
			continue
		}
		reports = append(reports, r)
	}
	return reports, errors.Join(errs...)
}
