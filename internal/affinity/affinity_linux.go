//go:build linux

// Package affinity pins the calling OS thread to a single CPU, the Go
// substitute for the original eventuals/os.h SetAffinity, used by
// StaticThreadPool's thread-per-core worker setup. Go has no portable
// API for this; golang.org/x/sys/unix exposes the Linux syscall directly,
// the same package an eventloop module in the reference corpus already
// depends on for platform-specific syscalls.
package affinity

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Pin locks the calling goroutine to its current OS thread and restricts
// that thread to running on cpu. The caller must have already called
// runtime.LockOSThread, or call Pin from a goroutine it intends to keep
// permanently bound to one OS thread (StaticThreadPool's worker loops do
// both).
func Pin(cpu int) error {
	runtime.LockOSThread()
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}

// NumCPU reports the number of logical CPUs available to the process,
// mirroring the original's std::thread::hardware_concurrency().
func NumCPU() int { return runtime.NumCPU() }
