package eventuals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromisify_getBlocksUntilValue(t *testing.T) {
	t.Parallel()

	f := Promisify("get", Just(7))
	v, err := f.Get()
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestPromisify_stopReportsErrStopped(t *testing.T) {
	t.Parallel()

	f := Promisify("stop", stoppingValue[int]())
	_, err := f.Get()
	assert.ErrorIs(t, err, ErrStopped)
}

func TestDereference_isPromisifyPlusGet(t *testing.T) {
	t.Parallel()

	v, err := Dereference("deref", Just("hello"))
	assert.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestFuture_stopTriggersInterrupt(t *testing.T) {
	t.Parallel()

	installed := make(chan struct{})
	e := func(k Continuation[Unit]) Continuation[Unit] {
		return &interruptibleLeaf{k: k, installed: installed}
	}

	f := Promisify("interruptible", Eventual[Unit, Unit](e))
	f.Start()
	<-installed
	f.Stop()

	_, err := f.Get()
	assert.ErrorIs(t, err, ErrStopped)
}

type interruptibleLeaf struct {
	k         Continuation[Unit]
	installed chan struct{}
}

func (l *interruptibleLeaf) Start(Unit) {}
func (l *interruptibleLeaf) Fail(err error) { l.k.Fail(err) }
func (l *interruptibleLeaf) Stop()          { l.k.Stop() }
func (l *interruptibleLeaf) Register(i *Interrupt) {
	i.Install(func() { l.k.Stop() })
	close(l.installed)
}
