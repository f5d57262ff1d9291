package eventuals

import (
	"fmt"
	"sync"
)

// ForkJoin fans a single upstream value out to n independently-built child
// Eventuals and joins their results back into one []V, preserving index
// order regardless of completion order — the Go shape of the original
// eventuals/fork-join.h Fork/Join pair collapsed into one combinator.
//
// f(i, arg) builds the i'th child from the shared upstream value. Each
// child gets its own Context, forked off whatever Context is current when
// Start runs and named "<parent> [ForkJoin - name - i]", and is submitted
// on that Context's Scheduler rather than started inline — the Go shape of
// fork-join.h's fiber.context.emplace(...)/scheduler()->Submit(...), which
// is what actually lets branches run concurrently instead of back-to-back
// on the calling goroutine. Every child is wrapped in Reschedule(parent)
// before its slot continuation, so the join's bookkeeping and the final
// downstream signal land on the parent Context, not on a worker.
//
// Precedence on completion: if any child
// Stops, the whole join Stops. Otherwise, if any child Fails, the join
// Fails with the lowest-indexed failing child's error. Only if every child
// produced a value does the join Start with the []V in index order.
func ForkJoin[Arg, V any](name string, n int, f func(index int, arg Arg) Eventual[Unit, V]) Eventual[Arg, []V] {
	return func(k Continuation[[]V]) Continuation[Arg] {
		return &forkJoinContinuation[Arg, V]{name: name, n: n, f: f, k: k}
	}
}

type forkJoinContinuation[Arg, V any] struct {
	name string
	n    int
	f    func(index int, arg Arg) Eventual[Unit, V]
	k    Continuation[[]V]
	in   *Interrupt
}

func (c *forkJoinContinuation[Arg, V]) Start(arg Arg) {
	if c.n == 0 {
		c.k.Start(nil)
		return
	}

	state := &forkJoinState[V]{slots: make([]forkJoinSlot[V], c.n)}
	state.remaining = int64(c.n)

	interrupts := make([]*Interrupt, c.n)
	for i := range interrupts {
		interrupts[i] = &Interrupt{}
	}
	if c.in != nil {
		relay := func() {
			for _, in := range interrupts {
				in.Trigger()
			}
		}
		if !c.in.Install(relay) {
			// c.in already fired before we could install a handler; run the
			// same cancellation effect ourselves immediately.
			relay()
		}
	}

	parent := Current()

	for i := 0; i < c.n; i++ {
		slotK := &forkJoinSlotContinuation[V]{
			index:      i,
			state:      state,
			interrupts: interrupts,
			finish:     func() { c.finalize(state) },
		}
		child := c.f(i, arg)
		childCont := child.K(Reschedule[V](parent)(slotK))
		childCont.Register(interrupts[i])

		childCtx := parent.Fork(fmt.Sprintf("%s [ForkJoin - %s - %d]", parent.Name(), c.name, i))
		childCtx.Scheduler().Submit(childCtx, childCtx.Name(), func() {
			childCont.Start(Unit{})
		})
	}
}

func (c *forkJoinContinuation[Arg, V]) Fail(err error)        { c.k.Fail(err) }
func (c *forkJoinContinuation[Arg, V]) Stop()                 { c.k.Stop() }
func (c *forkJoinContinuation[Arg, V]) Register(in *Interrupt) { c.in = in }

func (c *forkJoinContinuation[Arg, V]) finalize(state *forkJoinState[V]) {
	state.done.Do(func() {
		stopped := false
		for _, sl := range state.slots {
			if sl.state == forkJoinSlotStopped {
				stopped = true
				break
			}
		}
		if stopped {
			c.k.Stop()
			return
		}

		for _, sl := range state.slots {
			if sl.state == forkJoinSlotError {
				c.k.Fail(sl.err)
				return
			}
		}

		values := make([]V, len(state.slots))
		for i, sl := range state.slots {
			values[i] = sl.value
		}
		c.k.Start(values)
	})
}

type forkJoinSlotState int

const (
	forkJoinSlotUndefined forkJoinSlotState = iota
	forkJoinSlotValue
	forkJoinSlotStopped
	forkJoinSlotError
)

type forkJoinSlot[V any] struct {
	state forkJoinSlotState
	value V
	err   error
}

// forkJoinState holds the shared, mutex-protected result slots and the
// remaining-children countdown every branch's terminal signal decrements.
type forkJoinState[V any] struct {
	mu        sync.Mutex
	slots     []forkJoinSlot[V]
	remaining int64
	done      sync.Once
}

func (s *forkJoinState[V]) complete(index int, slot forkJoinSlot[V]) (last bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[index] = slot
	s.remaining--
	return s.remaining == 0
}

// forkJoinSlotContinuation is the per-branch Continuation[V] a child
// Eventual drives. It records the branch's outcome into the shared state
// and, on any non-value outcome, cross-triggers every sibling's Interrupt
// so Stop/Fail propagates to still-running branches immediately, mirroring
// the original's "interrupter" callback in fork-join.h.
type forkJoinSlotContinuation[V any] struct {
	index      int
	state      *forkJoinState[V]
	interrupts []*Interrupt
	finish     func()
}

func (s *forkJoinSlotContinuation[V]) Start(v V) {
	if s.state.complete(s.index, forkJoinSlot[V]{state: forkJoinSlotValue, value: v}) {
		s.finish()
	}
}

func (s *forkJoinSlotContinuation[V]) Fail(err error) {
	s.triggerSiblings()
	if s.state.complete(s.index, forkJoinSlot[V]{state: forkJoinSlotError, err: err}) {
		s.finish()
	}
}

func (s *forkJoinSlotContinuation[V]) Stop() {
	s.triggerSiblings()
	if s.state.complete(s.index, forkJoinSlot[V]{state: forkJoinSlotStopped}) {
		s.finish()
	}
}

func (s *forkJoinSlotContinuation[V]) Register(*Interrupt) {
	// The owning ForkJoin already holds this branch's Interrupt and
	// triggers it directly; nothing further to attach here.
}

func (s *forkJoinSlotContinuation[V]) triggerSiblings() {
	for i, in := range s.interrupts {
		if i != s.index {
			in.Trigger()
		}
	}
}
