package eventuals

import "sync/atomic"

// Interrupt is a one-shot cooperative cancellation token. It holds at most
// one installed handler and races Trigger against Install over a single
// atomic state word: a compare-and-swap on that word decides who "wins"
// each allowed transition.
//
// Zero value is a usable, untriggered Interrupt with no handler.
type Interrupt struct {
	// state holds the install/trigger state machine:
	//   0 = empty, 1 = installed, 2 = triggered (no handler installed in time),
	//   3 = installed-then-triggered (handler has run or is running).
	state   atomic.Uint32
	handler func()
}

const (
	interruptEmpty            uint32 = 0
	interruptInstalled        uint32 = 1
	interruptTriggeredOnly    uint32 = 2
	interruptInstalledTrigger uint32 = 3
)

// Install attaches handler, returning true if installation succeeded.
// Returns false if Trigger has already fired; in that case the caller is
// responsible for running the cancellation effect itself immediately,
// since no Trigger call will run it for them.
func (in *Interrupt) Install(handler func()) bool {
	if in.state.CompareAndSwap(interruptEmpty, interruptInstalled) {
		in.handler = handler
		return true
	}
	// Either already installed (programming error to install twice) or
	// already triggered before install.
	return false
}

// Trigger fires the interrupt. Idempotent: only the first call has any
// effect. If a handler is installed, it runs synchronously from this call;
// otherwise the triggered state is recorded for a future Install to observe.
func (in *Interrupt) Trigger() {
	for {
		switch in.state.Load() {
		case interruptEmpty:
			if in.state.CompareAndSwap(interruptEmpty, interruptTriggeredOnly) {
				return
			}
		case interruptInstalled:
			if in.state.CompareAndSwap(interruptInstalled, interruptInstalledTrigger) {
				in.handler()
				return
			}
		default:
			// Already triggered (with or without a handler); idempotent no-op.
			return
		}
	}
}

// Triggered reports whether Trigger has already been called, regardless of
// whether a handler was installed in time.
func (in *Interrupt) Triggered() bool {
	s := in.state.Load()
	return s == interruptTriggeredOnly || s == interruptInstalledTrigger
}
