package eventuals

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThen_valuePassesThrough(t *testing.T) {
	t.Parallel()

	double := func(k Continuation[int]) Continuation[int] {
		return &doubleContinuation{k: k}
	}

	v, err := Dereference("then", Then(Just(21), Eventual[int, int](double)))
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

type doubleContinuation struct {
	k Continuation[int]
}

func (d *doubleContinuation) Start(v int)         { d.k.Start(v * 2) }
func (d *doubleContinuation) Fail(err error)      { d.k.Fail(err) }
func (d *doubleContinuation) Stop()               { d.k.Stop() }
func (d *doubleContinuation) Register(i *Interrupt) { d.k.Register(i) }

func TestThen_failShortCircuits(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	failing := func(k Continuation[int]) Continuation[Unit] {
		return &failingContinuation{k: k, err: wantErr}
	}
	started := false
	never := func(k Continuation[int]) Continuation[int] {
		return &observeStartContinuation{k: k, started: &started}
	}

	_, err := Dereference("then-fail", Then(Eventual[Unit, int](failing), Eventual[int, int](never)))
	assert.ErrorIs(t, err, wantErr)
	assert.False(t, started, "downstream stage must not Start when upstream fails")
}

type observeStartContinuation struct {
	k       Continuation[int]
	started *bool
}

func (o *observeStartContinuation) Start(v int) {
	*o.started = true
	o.k.Start(v)
}
func (o *observeStartContinuation) Fail(err error)        { o.k.Fail(err) }
func (o *observeStartContinuation) Stop()                 { o.k.Stop() }
func (o *observeStartContinuation) Register(i *Interrupt) { o.k.Register(i) }

type failingContinuation struct {
	k   Continuation[int]
	err error
}

func (f *failingContinuation) Start(Unit)            { f.k.Fail(f.err) }
func (f *failingContinuation) Fail(err error)        { f.k.Fail(err) }
func (f *failingContinuation) Stop()                 { f.k.Stop() }
func (f *failingContinuation) Register(i *Interrupt) { f.k.Register(i) }

func TestThen3_composesLeftToRight(t *testing.T) {
	t.Parallel()

	v, err := Dereference("then3", Then3(
		Just(1),
		Eventual[int, int](func(k Continuation[int]) Continuation[int] {
			return &addContinuation{k: k, n: 10}
		}),
		Eventual[int, int](func(k Continuation[int]) Continuation[int] {
			return &addContinuation{k: k, n: 100}
		}),
	))
	assert.NoError(t, err)
	assert.Equal(t, 111, v)
}

type addContinuation struct {
	k Continuation[int]
	n int
}

func (a *addContinuation) Start(v int)           { a.k.Start(v + a.n) }
func (a *addContinuation) Fail(err error)        { a.k.Fail(err) }
func (a *addContinuation) Stop()                 { a.k.Stop() }
func (a *addContinuation) Register(i *Interrupt) { a.k.Register(i) }
