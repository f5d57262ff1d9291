// Package glocal provides goroutine-local storage, the substitute this
// module uses for the C++ original's thread_local Scheduler::Context
// pointer. Go has no language-level goroutine-local storage; this package
// uses the well-documented fallback of parsing the numeric goroutine ID
// out of runtime.Stack's standard header line and keying a map on it, the
// same technique goroutine-local-storage libraries across the ecosystem
// use. This is acknowledged as stdlib-only: no available third-party
// library offers real goroutine-local storage, since it substitutes for a
// language feature rather than a concern a library would normally own.
//
// This is deliberately simple, not fast: it is only consulted at
// scheduling decision points (Context.Continue's Continuable check and
// the switch/restore around it), never per-signal in a hot loop.
package glocal

import (
	"runtime"
	"strconv"
	"sync"
)

var store sync.Map // uint64 goroutine id -> any

// ID returns the calling goroutine's numeric ID, for packages that need to
// key their own per-goroutine state without going through Get/Set (e.g. the
// static thread pool's worker-to-CPU lookup, which must not share Get/Set's
// single any-typed slot with the Context stored there).
func ID() uint64 { return goroutineID() }

// goroutineID extracts the numeric ID from the first line of a
// runtime.Stack dump, which always has the form "goroutine 123 [state]:".
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	const prefix = "goroutine "
	if len(b) <= len(prefix) || string(b[:len(prefix)]) != prefix {
		return 0
	}
	b = b[len(prefix):]
	i := 0
	for i < len(b) && b[i] != ' ' {
		i++
	}
	id, _ := strconv.ParseUint(string(b[:i]), 10, 64)
	return id
}

// Get returns the value stored for the calling goroutine, if any.
func Get[T any]() (T, bool) {
	v, ok := store.Load(goroutineID())
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Set stores v for the calling goroutine.
func Set[T any](v T) {
	store.Store(goroutineID(), v)
}

// Clear removes any value stored for the calling goroutine.
func Clear() {
	store.Delete(goroutineID())
}
