package util

import "runtime"

// GetOptimalPoolSize returns the pool size for CGO-heavy parser work:
// min(max(2 x NumCPU, 4), 32). The floor keeps some parallelism on
// small machines; the cap bounds native parser memory on large ones.
func GetOptimalPoolSize() int {
	poolSize := runtime.NumCPU() * 2
	if poolSize < 4 {
		poolSize = 4
	}
	if poolSize > 32 {
		poolSize = 32
	}
	return poolSize
}
