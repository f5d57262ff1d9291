package eventuals

import "sync"

// Notification is a one-shot, multi-waiter latch: a private boolean
// "notified" that transitions false → true at most once, waking every
// blocked WaitForNotification call. Grounded directly on the original
// eventuals/notification.hh Notification (lock + condition variable);
// sync.Cond is the natural Go analogue of the C++ ConditionVariable.
//
// The zero value is ready to use.
type Notification struct {
	mu       sync.Mutex
	cond     sync.Cond
	condInit sync.Once
	notified bool
}

func (n *Notification) initCond() {
	n.condInit.Do(func() { n.cond.L = &n.mu })
}

// Notify sets "notified" to true and wakes every waiter. Calling Notify a
// second time is a programming error and panics, matching the original's
// CHECK(!notified_).
func (n *Notification) Notify() {
	n.initCond()
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.notified {
		panic("eventuals: Notification notified more than once")
	}
	n.notified = true
	n.cond.Broadcast()
}

// WaitForNotification blocks until "notified" is true, returning
// immediately if it already is — including for every call after the first
// Notify, from any number of waiters.
func (n *Notification) WaitForNotification() {
	n.initCond()
	n.mu.Lock()
	defer n.mu.Unlock()
	for !n.notified {
		n.cond.Wait()
	}
}

// IsNotified reports whether Notify has already been called, without
// blocking.
func (n *Notification) IsNotified() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.notified
}
