package eventuals

import (
	"github.com/google/uuid"

	"go.eventuals.dev/eventuals/internal/glocal"
)

// Context is the Go realization of the original eventuals::Scheduler::Context:
// a named handle bound to a Scheduler, carrying a unique identity and an
// optional CPU pin; the Scheduler's Continuable check decides whether a
// submission can run inline.
//
// A Context is not safe to Continue/ContinueWith concurrently from more than
// one goroutine; the rule of at most one in-flight signal per Continuation
// already guarantees single-threaded use of any one Context at a time.
type Context struct {
	name      string
	scheduler Scheduler
	id        uuid.UUID
	parent    *Context

	hasPin bool
	pinCPU int
}

// Pinned reports the CPU this Context is required to run on, if any — set
// via StaticThreadPool.Schedule, consulted by StaticThreadPool.Continuable
// and StaticThreadPool.Submit when honoring Pinned requirements.
func (c *Context) Pinned() (cpu int, ok bool) { return c.pinCPU, c.hasPin }

// WithPin returns a copy of ctx pinned to the given CPU.
func (c *Context) WithPin(cpu int) *Context {
	cp := *c
	cp.hasPin = true
	cp.pinCPU = cpu
	return &cp
}

// NewContext allocates a fresh Context bound to scheduler, with the given
// diagnostic name (surfaced in trace logging).
func NewContext(name string, scheduler Scheduler) *Context {
	if scheduler == nil {
		scheduler = DefaultScheduler()
	}
	return &Context{
		name:      name,
		scheduler: scheduler,
		id:        uuid.New(),
	}
}

// Name returns the Context's diagnostic name.
func (c *Context) Name() string { return c.name }

// Scheduler returns the Scheduler this Context is bound to.
func (c *Context) Scheduler() Scheduler { return c.scheduler }

// Fork derives a child Context sharing the same scheduler but its own
// identity, used by ForkJoin to give each branch a distinct current context.
func (c *Context) Fork(name string) *Context {
	return &Context{
		name:      name,
		scheduler: c.scheduler,
		id:        uuid.New(),
		parent:    c,
	}
}

// defaultContext is installed lazily for any goroutine that reaches a
// Scheduler operation without ever having called Switch, mirroring the
// original's implicit default Context on the main thread.
func defaultContext() *Context {
	return &Context{name: "default", scheduler: DefaultScheduler(), id: uuid.Nil}
}

// Current returns the Context installed for the calling goroutine, creating
// and installing a default one on first use.
func Current() *Context {
	if c, ok := glocal.Get[*Context](); ok && c != nil {
		return c
	}
	c := defaultContext()
	glocal.Set[*Context](c)
	return c
}

// Switch installs ctx as current for the calling goroutine and returns a
// restore function that puts the previous Context back, the same
// enter/leave pairing the original's Scheduler::Context::Set RAII guard
// performs around every resumed continuation.
func Switch(ctx *Context) (restore func()) {
	previous, hadPrevious := glocal.Get[*Context]()
	glocal.Set[*Context](ctx)
	if !hadPrevious {
		return func() { glocal.Clear() }
	}
	return func() { glocal.Set[*Context](previous) }
}
