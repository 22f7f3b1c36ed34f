// Package parallel spreads flat index ranges across worker goroutines. It
// backs the chunked element-wise paths of the array package.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how a loop is split across goroutines.
type Config struct {
	Enabled      bool  // Whether to run concurrently at all.
	NumWorkers   int   // Goroutines to spread chunks over.
	MinChunkSize int64 // Smallest range worth a goroutine.
}

// DefaultConfig sizes the pool from the CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1024,
	}
}

// For executes f(i) for every i in [0, n), splitting the range into
// contiguous chunks. Runs sequentially when parallelism is disabled or n is
// below the chunk threshold.
func For(n int64, f func(i int64), cfg Config) {
	ForRange(n, func(lo, hi int64) {
		for i := lo; i < hi; i++ {
			f(i)
		}
	}, cfg)
}

// ForRange hands each worker one contiguous sub-range [lo, hi) of [0, n).
// Callers that can process a whole range at once, such as walks over flat
// array storage, avoid the per-index closure overhead of For.
func ForRange(n int64, f func(lo, hi int64), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || n < cfg.MinChunkSize {
		f(0, n)
		return
	}

	chunk := max((n+int64(cfg.NumWorkers)-1)/int64(cfg.NumWorkers), cfg.MinChunkSize)
	var wg sync.WaitGroup
	for lo := int64(0); lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int64) {
			defer wg.Done()
			f(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
