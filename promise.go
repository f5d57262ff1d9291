package eventuals

import "sync"

// Future is the blocking handle Promisify returns: a single eventual result,
// observed with Get, with a Stop method for external cancellation — the Go
// shape of the original's `promisify(name, e) → (future, head)`, where
// callers ultimately block on (or poll) the single terminal future.
type Future[V any] struct {
	name      string
	terminal  *Terminal[V]
	head      Continuation[Unit]
	interrupt *Interrupt
	startOnce sync.Once
}

// Promisify builds the terminal Continuation for e, registers a fresh
// Interrupt on the resulting chain, and returns a Future that starts the
// pipeline on its first Get/Start call. name is carried for diagnostics
// only.
func Promisify[V any](name string, e Eventual[Unit, V]) *Future[V] {
	t := newTerminal[V]()
	head := e.K(t)
	in := &Interrupt{}
	head.Register(in)
	return &Future[V]{name: name, terminal: t, head: head, interrupt: in}
}

// Start runs the pipeline, if it has not already been started. Get calls
// this implicitly, so most callers never need it directly; it is exposed
// for callers that want to kick work off without yet blocking for the
// result.
func (f *Future[V]) Start() {
	f.startOnce.Do(func() { f.head.Start(Unit{}) })
}

// Stop triggers the Future's Interrupt, requesting cooperative cancellation
// of whatever leaf is currently running.
func (f *Future[V]) Stop() { f.interrupt.Trigger() }

// Wait blocks for the pipeline's terminal signal and returns it reified as
// a Result, without collapsing Stopped into an error.
func (f *Future[V]) Wait() Result[V] {
	f.Start()
	return <-f.terminal.done
}

// Get blocks for the terminal signal and returns it as a plain (value,
// error) pair, the shape most callers want; a Stop is reported as
// ErrStopped. This is the "dereference" operation: promisify plus a
// blocking future-wait.
func (f *Future[V]) Get() (V, error) {
	r := f.Wait()
	if r.Stopped {
		var zero V
		return zero, ErrStopped
	}
	return r.Value, r.Err
}

// Dereference is Promisify followed immediately by a blocking Get, for
// callers that have no use for the intermediate Future.
func Dereference[V any](name string, e Eventual[Unit, V]) (V, error) {
	return Promisify(name, e).Get()
}
