package eventuals

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"go.eventuals.dev/eventuals/internal/affinity"
	"go.eventuals.dev/eventuals/internal/glocal"
	"go.eventuals.dev/eventuals/internal/tracelog"
)

// backgroundAcquireCtx is used for the backlog semaphore's Acquire calls,
// which this module always wants to block uninterruptibly on (backpressure
// is bounded by maxQueueDepth, not by caller cancellation).
var backgroundAcquireCtx = context.Background()

// Pinned names the single CPU a piece of scheduled work must run on, the Go
// shape of the original's Pinned ("requirements carry (name, pinned_cpu?)").
type Pinned struct {
	CPU int
	Set bool
}

// Requirements names a unit of work submitted to a StaticThreadPool: a
// diagnostic name plus an optional pin, mirroring the original's
// StaticThreadPool::Requirements.
type Requirements struct {
	Name   string
	Pinned Pinned
}

// maxQueueDepth bounds how many waiters may be queued for one CPU before
// Submit blocks the submitting goroutine, a backpressure bound the original
// does not have, enforced here with a capacity semaphore per CPU.
const maxQueueDepth = 4096

// waiter is one pending submission parked on a worker's intrusive stack,
// the Go shape of the original's StaticThreadPool::Waiter.
type waiter struct {
	ctx      *Context
	callback func()
	next     *waiter
}

// StaticThreadPool is a fixed-size, one-goroutine-per-CPU Scheduler: each
// worker goroutine is pinned to one logical CPU and only ever runs work
// requiring that CPU, the Go shape of the original eventuals
// static-thread-pool.h/.cc. Concurrency is introduced exclusively by
// Submit moving a callback onto the target CPU's worker.
type StaticThreadPool struct {
	concurrency int
	heads       []atomic.Pointer[waiter]
	wake        []chan struct{}
	backlog     []*semaphore.Weighted
	depth       []atomic.Int64
	workerCPU   sync.Map // goroutine id (uint64) -> cpu (int)
	shutdown    atomic.Bool
	wg          sync.WaitGroup
}

// NewStaticThreadPool starts a worker goroutine per logical CPU
// (affinity.NumCPU), pinning each to its CPU where the platform supports
// it, and blocks until every worker has signalled it is running.
func NewStaticThreadPool() *StaticThreadPool {
	n := affinity.NumCPU()
	p := &StaticThreadPool{
		concurrency: n,
		heads:       make([]atomic.Pointer[waiter], n),
		wake:        make([]chan struct{}, n),
		backlog:     make([]*semaphore.Weighted, n),
		depth:       make([]atomic.Int64, n),
	}
	ready := make(chan struct{}, n)
	for cpu := 0; cpu < n; cpu++ {
		p.wake[cpu] = make(chan struct{}, 1)
		p.backlog[cpu] = semaphore.NewWeighted(maxQueueDepth)
		p.wg.Add(1)
		go p.worker(cpu, ready)
	}
	for i := 0; i < n; i++ {
		<-ready
	}
	return p
}

// Concurrency reports how many worker CPUs this pool has.
func (p *StaticThreadPool) Concurrency() int { return p.concurrency }

func (p *StaticThreadPool) worker(cpu int, ready chan<- struct{}) {
	defer p.wg.Done()
	if err := affinity.Pin(cpu); err != nil {
		tracelog.Tracef(3, "pool", "affinity pin failed", err.Error())
	}
	p.workerCPU.Store(glocal.ID(), cpu)
	tracelog.Tracef(3, "pool", "worker running", fmt.Sprintf("cpu=%d", cpu))
	ready <- struct{}{}

	for {
		for {
			w := p.pop(cpu)
			if w == nil {
				break
			}
			p.backlog[cpu].Release(1)
			p.depth[cpu].Add(-1)
			tracelog.Tracef(1, "pool", "resuming", w.ctx.Name())
			restore := Switch(w.ctx)
			w.callback()
			restore()
		}
		if p.shutdown.Load() {
			return
		}
		<-p.wake[cpu]
	}
}

// push prepends w onto cpu's intrusive waiter stack.
func (p *StaticThreadPool) push(cpu int, w *waiter) {
	head := &p.heads[cpu]
	for {
		top := head.Load()
		w.next = top
		if head.CompareAndSwap(top, w) {
			return
		}
	}
}

// pop detaches the oldest waiter on cpu's stack (the one farthest from
// head), preserving submission order for any batch of waiters that queued
// up while the worker was busy — the same "walk to the tail" strategy the
// original uses once per drain.
func (p *StaticThreadPool) pop(cpu int) *waiter {
	head := &p.heads[cpu]
	for {
		top := head.Load()
		if top == nil {
			return nil
		}
		if top.next == nil {
			if head.CompareAndSwap(top, nil) {
				return top
			}
			continue
		}
		w := top
		for w.next.next != nil {
			w = w.next
		}
		last := w.next
		w.next = nil
		return last
	}
}

// Continuable reports whether ctx's pinned CPU is the one the calling
// goroutine is already running on — in which case Context.Continue can run
// inline instead of resubmitting through the queue.
func (p *StaticThreadPool) Continuable(ctx *Context) bool {
	cpu, ok := ctx.Pinned()
	if !ok {
		return false
	}
	current, ok := p.workerCPU.Load(glocal.ID())
	return ok && current.(int) == cpu
}

// Submit queues f onto ctx's pinned CPU and wakes that CPU's worker. Submit
// panics if ctx carries no pin, since a StaticThreadPool has no notion of
// "run anywhere" — pin the Context via Schedule first.
func (p *StaticThreadPool) Submit(ctx *Context, name string, f func()) {
	cpu, ok := ctx.Pinned()
	if !ok {
		panic("eventuals: Submit to StaticThreadPool requires a pinned Context")
	}
	tracelog.Tracef(1, "pool", "submitting", name)

	_ = p.backlog[cpu].Acquire(backgroundAcquireCtx, 1)
	p.depth[cpu].Add(1)
	p.push(cpu, &waiter{ctx: ctx, callback: f})

	select {
	case p.wake[cpu] <- struct{}{}:
	default:
	}
}

// Shutdown signals every worker to exit once its queue drains, and returns
// immediately; call Wait to block until all workers have actually exited.
func (p *StaticThreadPool) Shutdown() {
	p.shutdown.Store(true)
	for cpu := range p.wake {
		select {
		case p.wake[cpu] <- struct{}{}:
		default:
		}
	}
}

// Wait blocks until every worker goroutine has exited following Shutdown.
func (p *StaticThreadPool) Wait() { p.wg.Wait() }

// leastLoaded returns the index of the CPU with the fewest queued waiters,
// the Go realization of the original's TODO ("pick the least loaded
// core"), which the C++ source left unimplemented and hard-coded to core 0
// (see DESIGN.md for this deliberate improvement over the original's
// literal behavior).
func (p *StaticThreadPool) leastLoaded() int {
	best := 0
	bestDepth := p.depth[0].Load()
	for cpu := 1; cpu < p.concurrency; cpu++ {
		if d := p.depth[cpu].Load(); d < bestDepth {
			best, bestDepth = cpu, d
		}
	}
	return best
}

// Schedule builds a Context pinned per req (picking the least-loaded CPU
// when req.Pinned is unset) and returns it bound to this pool, ready to
// drive a Reschedule or be passed directly as the Context for an Eventual
// run through Continue/ContinueWith. This is the Go shape of the
// original's StaticThreadPool::Schedule
// (`static_thread_pool().schedule(requirements, e)`); composing the
// returned Context with Reschedule(ctx) is how a pipeline stage actually
// hops onto the pool.
func (p *StaticThreadPool) Schedule(req Requirements) (*Context, error) {
	cpu := req.Pinned.CPU
	if !req.Pinned.Set {
		cpu = p.leastLoaded()
	}
	if cpu < 0 || cpu >= p.concurrency {
		return nil, fmt.Errorf("eventuals: %q required core is out of range [0,%d)", req.Name, p.concurrency)
	}
	return NewContext(req.Name, p).WithPin(cpu), nil
}
