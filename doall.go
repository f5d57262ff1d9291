package eventuals

import (
	"fmt"
	"sync"
)

// DoAll2 runs two independently-typed Eventuals concurrently and joins
// their results into a Pair — the Go shape of the original's
// `do_all(…)` for the two-branch case. Unlike ForkJoin,
// whose branches share one type and one upstream value, DoAll's branches
// are heterogeneous and nullary; Go's lack of variadic generics means each
// arity needs its own function, the way Then3/Then4 sit beside Then. Only
// the two-branch DoAll2 is provided.
//
// Each branch gets its own Context, forked off whatever Context is current
// when Start runs and named "<parent> [DoAll2 - A/B]", and is submitted on
// that Context's Scheduler rather than started inline, the same
// fork-and-submit shape ForkJoin uses. Each branch is wrapped in
// Reschedule(parent) before its slot continuation, so completion
// bookkeeping and the final downstream signal land on the parent Context.
//
// Stop dominates Fail, exactly as in ForkJoin; if both branches fail, A's
// error wins, as the lower index does in ForkJoin. If neither
// branch stops or fails, the Pair carries both values.
func DoAll2[A, B any](a Eventual[Unit, A], b Eventual[Unit, B]) Eventual[Unit, Pair[A, B]] {
	return func(k Continuation[Pair[A, B]]) Continuation[Unit] {
		return &doAll2Continuation[A, B]{a: a, b: b, k: k}
	}
}

type doAll2Continuation[A, B any] struct {
	a  Eventual[Unit, A]
	b  Eventual[Unit, B]
	k  Continuation[Pair[A, B]]
	in *Interrupt
}

func (d *doAll2Continuation[A, B]) Start(Unit) {
	var (
		mu        sync.Mutex
		remaining = 2
		stopped   bool
		err       error
		valA      A
		valB      B
	)
	inA, inB := &Interrupt{}, &Interrupt{}
	if d.in != nil {
		if !d.in.Install(func() {
			inA.Trigger()
			inB.Trigger()
		}) {
			// d.in already fired before we could install a handler; run the
			// same cancellation effect ourselves immediately.
			inA.Trigger()
			inB.Trigger()
		}
	}

	finish := func() {
		switch {
		case stopped:
			d.k.Stop()
		case err != nil:
			d.k.Fail(err)
		default:
			d.k.Start(Pair[A, B]{First: valA, Second: valB})
		}
	}

	complete := func() (last bool) {
		mu.Lock()
		defer mu.Unlock()
		remaining--
		return remaining == 0
	}

	parent := Current()

	slotA := &doAllSlot[A]{
		onValue: func(v A) {
			mu.Lock()
			valA = v
			mu.Unlock()
		},
		onStop: func() {
			mu.Lock()
			stopped = true
			mu.Unlock()
			inB.Trigger()
		},
		onFail: func(e error) {
			mu.Lock()
			err = e // A's error takes precedence over B's
			mu.Unlock()
			inB.Trigger()
		},
		complete: complete,
		finish:   finish,
	}
	contA := d.a.K(Reschedule[A](parent)(slotA))
	contA.Register(inA)

	slotB := &doAllSlot[B]{
		onValue: func(v B) {
			mu.Lock()
			valB = v
			mu.Unlock()
		},
		onStop: func() {
			mu.Lock()
			stopped = true
			mu.Unlock()
			inA.Trigger()
		},
		onFail: func(e error) {
			mu.Lock()
			if err == nil {
				err = e
			}
			mu.Unlock()
			inA.Trigger()
		},
		complete: complete,
		finish:   finish,
	}
	contB := d.b.K(Reschedule[B](parent)(slotB))
	contB.Register(inB)

	ctxA := parent.Fork(fmt.Sprintf("%s [DoAll2 - A]", parent.Name()))
	ctxA.Scheduler().Submit(ctxA, ctxA.Name(), func() { contA.Start(Unit{}) })

	ctxB := parent.Fork(fmt.Sprintf("%s [DoAll2 - B]", parent.Name()))
	ctxB.Scheduler().Submit(ctxB, ctxB.Name(), func() { contB.Start(Unit{}) })
}

func (d *doAll2Continuation[A, B]) Fail(err error)        { d.k.Fail(err) }
func (d *doAll2Continuation[A, B]) Stop()                 { d.k.Stop() }
func (d *doAll2Continuation[A, B]) Register(i *Interrupt) { d.in = i }

// doAllSlot is the per-branch Continuation DoAll2 drives: it records the
// branch's outcome via the supplied callbacks and signals completion once,
// with the last branch to finish running finish.
type doAllSlot[V any] struct {
	onValue  func(V)
	onStop   func()
	onFail   func(error)
	complete func() bool
	finish   func()
}

func (s *doAllSlot[V]) Start(v V) {
	s.onValue(v)
	if s.complete() {
		s.finish()
	}
}

func (s *doAllSlot[V]) Fail(err error) {
	s.onFail(err)
	if s.complete() {
		s.finish()
	}
}

func (s *doAllSlot[V]) Stop() {
	s.onStop()
	if s.complete() {
		s.finish()
	}
}

func (s *doAllSlot[V]) Register(*Interrupt) {}
