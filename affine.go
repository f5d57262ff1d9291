package eventuals

import "sync/atomic"

// affineGuard enforces terminal signal uniqueness: at most one of
// Start/Fail/Stop may ever fire on a given instance. It is the same
// one-shot enforcement idiom as Affine[R, A] (an atomic counter bumped
// with Add, where only the call that observes 1 "wins"), generalized
// here to guard a signal delivery rather than a continuation resume.
type affineGuard struct {
	used atomic.Uintptr
}

// enter reports whether this is the first call to enter across the
// lifetime of the guard; every subsequent call returns false.
func (g *affineGuard) enter() bool {
	return g.used.Add(1) == 1
}
