package eventuals

import "fmt"

// Preempt wraps e so it runs under its own dedicated child Context, forked
// off whatever Context is current when Start/Fail/Stop is first called —
// the Go shape of the original's _Preempt::Continuation, which is itself a
// Scheduler::Context subclass: Adapt() saves the previous context, builds
// e.k(Reschedule(previous).k(k)), and Start/Fail/Stop switch the
// thread-local current Context to "this", run the adapted continuation,
// then switch back to previous on every exit path. Reschedule(previous) is
// what finally hands control back to previous's Scheduler before k runs,
// so the downstream signal is delivered there rather than under Preempt's
// own Context — giving e a Context distinct from its surrounding pipeline
// that can be targeted for interruption as a unit.
func Preempt[Arg, V any](name string, e Eventual[Arg, V]) Eventual[Arg, V] {
	return func(k Continuation[V]) Continuation[Arg] {
		return &preemptContinuation[Arg, V]{name: name, e: e, k: k}
	}
}

type preemptContinuation[Arg, V any] struct {
	name string
	e    Eventual[Arg, V]
	k    Continuation[V]

	interrupt *Interrupt
	own       *Context
	adapted   Continuation[Arg]
}

// adapt lazily builds the dedicated child Context and the adapted
// continuation chain, the Go counterpart of the original's Adapt(): both
// are built once, on first use, against whatever Context happens to be
// current at that point.
func (p *preemptContinuation[Arg, V]) adapt() {
	if p.adapted != nil {
		return
	}
	previous := Current()
	p.own = previous.Fork(fmt.Sprintf("%s [Preempt - %s]", previous.Name(), p.name))
	p.adapted = p.e.K(Reschedule[V](previous)(p.k))
	if p.interrupt != nil {
		p.adapted.Register(p.interrupt)
	}
}

func (p *preemptContinuation[Arg, V]) Start(arg Arg) {
	p.adapt()
	restore := Switch(p.own)
	p.adapted.Start(arg)
	restore()
}

func (p *preemptContinuation[Arg, V]) Fail(err error) {
	p.adapt()
	restore := Switch(p.own)
	p.adapted.Fail(err)
	restore()
}

func (p *preemptContinuation[Arg, V]) Stop() {
	p.adapt()
	restore := Switch(p.own)
	p.adapted.Stop()
	restore()
}

func (p *preemptContinuation[Arg, V]) Register(i *Interrupt) { p.interrupt = i }
