package eventuals

// Eventual is a deferred, one-shot-per-run description of a pipeline stage.
// Eventual[Arg, V] computes a value of type V from an upstream value of
// type Arg (Arg = Unit for leaves with no upstream).
//
// This mirrors kont.Cont[R, A] = func(k func(A) R) R: instead of a pure
// function producing a plain result, K takes a downstream Continuation[V]
// and produces this stage's own Continuation[Arg]. Composition of two
// Eventuals is exactly composition of their K methods (see Then in
// compose.go), the same way kont.Bind composes two Cont values.
//
// Eventual values are pure/stateless by convention: K may be called any
// number of times and must allocate fresh state on each call, since the
// Continuation it returns is what carries one-shot state (see Interrupt
// and the "terminal signal uniqueness" invariant on Continuation). This is
// a deliberate Go-idiomatic relaxation of the C++ original's "builder
// consumed on K()" rule, which existed to support move-only types; Go has
// no analogous ownership-transfer primitive for plain closures, and a pure
// builder composes and re-runs safely, which is the more useful property.
type Eventual[Arg, V any] func(k Continuation[V]) Continuation[Arg]

// K builds this stage's Continuation, wired to forward its terminal signal
// into the given downstream Continuation.
func (e Eventual[Arg, V]) K(k Continuation[V]) Continuation[Arg] {
	return e(k)
}

// Forward is an embeddable base that passes Fail, Stop, and Register
// through to a downstream Continuation unchanged. Most stages only need to
// customize Start; embedding Forward and defining Start on the outer type
// avoids repeating the pass-through boilerplate for Fail/Stop/Register at
// every stage, the same role kont's genericMarker plays for effect resume
// dispatch.
type Forward[V any] struct {
	K Continuation[V]
}

func (f Forward[V]) Fail(err error)        { f.K.Fail(err) }
func (f Forward[V]) Stop()                 { f.K.Stop() }
func (f Forward[V]) Register(i *Interrupt) { f.K.Register(i) }
