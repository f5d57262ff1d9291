//go:build !linux

package affinity

import "runtime"

// Pin is a no-op on platforms without a supported affinity syscall; the
// worker still runs, just without CPU pinning.
func Pin(int) error { return nil }

// NumCPU reports the number of logical CPUs available to the process.
func NumCPU() int { return runtime.NumCPU() }
