package eventuals

// Just builds a leaf Eventual that immediately Starts with v when driven,
// the Go shape of the original's `just(v)`.
func Just[V any](v V) Eventual[Unit, V] {
	return func(k Continuation[V]) Continuation[Unit] {
		return &justContinuation[V]{Forward: Forward[V]{K: k}, v: v}
	}
}

type justContinuation[V any] struct {
	Forward[V]
	v V
}

func (j *justContinuation[V]) Start(Unit) { j.K.Start(j.v) }

// Lazy builds a leaf Eventual that computes its value from f only when
// driven, rather than when the Eventual value is constructed — useful for
// values that are expensive or that capture mutable state that should only
// be read at run time.
func Lazy[V any](f func() V) Eventual[Unit, V] {
	return func(k Continuation[V]) Continuation[Unit] {
		return &lazyContinuation[V]{Forward: Forward[V]{K: k}, f: f}
	}
}

type lazyContinuation[V any] struct {
	Forward[V]
	f func() V
}

func (l *lazyContinuation[V]) Start(Unit) { l.K.Start(l.f()) }

// Closure defers building the child Eventual until Start time, so f can
// close over and mutate local state across repeated runs — the Go shape of
// the original's `closure(f)`, used the way the
// original's Foreach test wraps a captured accumulator.
func Closure[V any](f func() Eventual[Unit, V]) Eventual[Unit, V] {
	return func(k Continuation[V]) Continuation[Unit] {
		return &closureContinuation[V]{f: f, k: k}
	}
}

type closureContinuation[V any] struct {
	f  func() Eventual[Unit, V]
	k  Continuation[V]
	in *Interrupt
}

func (c *closureContinuation[V]) Start(Unit) {
	childCont := c.f().K(c.k)
	if c.in != nil {
		childCont.Register(c.in)
	}
	childCont.Start(Unit{})
}

func (c *closureContinuation[V]) Fail(err error)        { c.k.Fail(err) }
func (c *closureContinuation[V]) Stop()                 { c.k.Stop() }
func (c *closureContinuation[V]) Register(i *Interrupt) { c.in = i }

// Let builds the downstream Eventual from the upstream value itself, then
// re-delivers that same value into the downstream chain — the Go shape of
// the original's `let` binding, typically paired with Finally so a single
// name stands for "whatever just completed" across the rest of a pipeline.
func Let[Arg, V any](f func(Arg) Eventual[Arg, V]) Eventual[Arg, V] {
	return func(k Continuation[V]) Continuation[Arg] {
		return &letContinuation[Arg, V]{f: f, k: k}
	}
}

type letContinuation[Arg, V any] struct {
	f  func(Arg) Eventual[Arg, V]
	k  Continuation[V]
	in *Interrupt
}

func (l *letContinuation[Arg, V]) Start(arg Arg) {
	childCont := l.f(arg).K(l.k)
	if l.in != nil {
		childCont.Register(l.in)
	}
	childCont.Start(arg)
}

func (l *letContinuation[Arg, V]) Fail(err error)        { l.k.Fail(err) }
func (l *letContinuation[Arg, V]) Stop()                 { l.k.Stop() }
func (l *letContinuation[Arg, V]) Register(i *Interrupt) { l.in = i }

// Head is an identity stage: it forwards its upstream signal unchanged.
// The original's Head() takes the first value off an asynchronous stream
// and discards the rest (via the original's
// record-route.cc: `... >> Head() >> Finally(Let(...))`). This module's
// Continuation protocol is already single-valued rather than a multi-emit
// stream, so there is no "rest" to discard; Head is kept as a pass-through
// so pipelines translated from a streaming source still type-check and
// read the same way, with the stream-truncation behavior it used to
// provide now a no-op.
func Head[V any]() Eventual[V, V] {
	return func(k Continuation[V]) Continuation[V] { return k }
}

// Iterate builds a leaf Eventual producing a defensive copy of seq, the Go
// shape of the original's `iterate(seq)`, which leaves the source
// sequence unchanged.
func Iterate[V any](seq []V) Eventual[Unit, []V] {
	cp := append([]V(nil), seq...)
	return Just(cp)
}

// Foreach runs f over every element of seq synchronously at Start time,
// then Starts downstream with Unit{} — the Go shape of the original's
// `foreach(seq, f)`.
func Foreach[V any](seq []V, f func(V)) Eventual[Unit, Unit] {
	return func(k Continuation[Unit]) Continuation[Unit] {
		return &foreachContinuation[V]{Forward: Forward[Unit]{K: k}, seq: seq, f: f}
	}
}

type foreachContinuation[V any] struct {
	Forward[Unit]
	seq []V
	f   func(V)
}

func (fe *foreachContinuation[V]) Start(Unit) {
	for _, v := range fe.seq {
		fe.f(v)
	}
	fe.K.Start(Unit{})
}

// Collect builds a leaf Eventual producing a defensive copy of seq, the Go
// analogue of the original's Collect<Container>() terminal stage of an
// Iterate pipeline. Since this module's
// Iterate already reifies the whole sequence as one value rather than a
// stream of Emits, Collect only needs to guarantee the same
// leaves-the-source-unchanged property; it is otherwise Iterate by another
// name, kept distinct for call sites translated from the original's
// `Iterate(v) >> Collect<T>()` shape.
func Collect[V any](seq []V) Eventual[Unit, []V] {
	return Iterate(seq)
}

// Pair is the Go stand-in for the original's std::tuple<A, B>, the payload
// Unpack2 destructures.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Unpack2 builds a stage that destructures an upstream Pair into its two
// fields before calling f — the Go shape of the original's `Unpack`
// (`just((4, "2")) >> then(unpack((i, s) -> format(i, s)))`).
func Unpack2[A, B, W any](f func(A, B) W) Eventual[Pair[A, B], W] {
	return func(k Continuation[W]) Continuation[Pair[A, B]] {
		return &unpack2Continuation[A, B, W]{Forward: Forward[W]{K: k}, f: f}
	}
}

type unpack2Continuation[A, B, W any] struct {
	Forward[W]
	f func(A, B) W
}

func (u *unpack2Continuation[A, B, W]) Start(p Pair[A, B]) { u.K.Start(u.f(p.First, p.Second)) }
