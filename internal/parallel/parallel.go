// Package parallel provides chunked index-space fan-out for elementwise kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how an index-space walk is split across goroutines.
type Config struct {
	Workers      int // Goroutines to fan out to; <= 1 forces a sequential walk.
	MinChunkSize int // Smallest index range worth its own goroutine.
}

// DefaultConfig sizes the fan-out to the machine.
func DefaultConfig() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		MinChunkSize: 4096, // Squared difference is cheap per element; small walks stay sequential.
	}
}

// Sequential returns a config that forces a plain sequential walk.
func Sequential() Config {
	return Config{Workers: 1}
}

// For executes f(i) for every i in [0, n).
// The walk is split into contiguous chunks when it is large enough to
// amortize goroutine overhead. f must be safe to call concurrently for
// distinct i.
func For(n int, f func(i int), cfg Config) {
	if cfg.Workers <= 1 || cfg.MinChunkSize <= 0 || n < 2*cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunkSize := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
