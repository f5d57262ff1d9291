package eventuals

import "go.eventuals.dev/eventuals/internal/tracelog"

// Scheduler decides, for each submitted callback, whether it runs inline on
// the submitting goroutine or is handed off elsewhere. This is the Go
// counterpart of the original eventuals::Scheduler abstract interface:
// StaticThreadPool is the production implementation; the package also
// exposes a trivial always-inline Scheduler for tests and for
// callers who never need real concurrency.
type Scheduler interface {
	// Continuable reports whether ctx can run its next callback inline, on
	// the calling goroutine, right now. Context.Continue consults this
	// before deciding to call the callback directly versus Submit it.
	Continuable(ctx *Context) bool

	// Submit arranges for f to run (on some goroutine) with ctx installed
	// as current for the duration of the call. It may run f synchronously
	// before returning (the inline Scheduler) or hand it to another
	// goroutine and return at once (StaticThreadPool).
	// name is carried through only for trace logging.
	Submit(ctx *Context, name string, f func())
}

// Continue runs f with ctx installed as current, inline if the Scheduler
// says that's safe, or via Submit otherwise — the Go shape of the original
// Scheduler::Context::Continue's fast-path-vs-submit decision.
func (c *Context) Continue(f func()) {
	c.ContinueWith(c.name, f)
}

// ContinueWith is Continue with an explicit diagnostic name, used when the
// caller wants the trace log entry to read as a different logical step than
// the Context's own name (mirrors the original's ContinueWith).
func (c *Context) ContinueWith(name string, f func()) {
	sched := c.scheduler
	if sched.Continuable(c) {
		tracelog.Tracef(1, "scheduler", "continuing inline", name)
		restore := Switch(c)
		defer restore()
		f()
		return
	}
	tracelog.Tracef(1, "scheduler", "submitting", name)
	sched.Submit(c, name, f)
}

// inlineScheduler is always Continuable: every callback runs synchronously
// on the submitting goroutine. This is the Go analogue of the trivial
// inline executor used throughout the original's unit tests, and is the
// Scheduler new Eventual pipelines get unless a StaticThreadPool is bound.
type inlineScheduler struct{}

func (inlineScheduler) Continuable(*Context) bool { return true }

func (inlineScheduler) Submit(ctx *Context, _ string, f func()) {
	restore := Switch(ctx)
	defer restore()
	f()
}

var defaultSchedulerInstance Scheduler = inlineScheduler{}

// DefaultScheduler returns the module-wide default Scheduler used by any
// Context constructed without one explicitly. It is an always-inline
// Scheduler; call SetDefaultScheduler to install a StaticThreadPool for
// production use.
func DefaultScheduler() Scheduler { return defaultSchedulerInstance }

// SetDefaultScheduler replaces the module-wide default Scheduler, typically
// called once at process startup with a *StaticThreadPool.
func SetDefaultScheduler(s Scheduler) {
	if s == nil {
		s = inlineScheduler{}
	}
	defaultSchedulerInstance = s
}
