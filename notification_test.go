package eventuals

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotification_waitBlocksUntilNotify(t *testing.T) {
	t.Parallel()

	var n Notification
	assert.False(t, n.IsNotified())

	done := make(chan struct{})
	go func() {
		n.WaitForNotification()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("WaitForNotification returned before Notify")
	case <-time.After(20 * time.Millisecond):
	}

	n.Notify()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitForNotification did not return after Notify")
	}
	assert.True(t, n.IsNotified())
}

func TestNotification_multiWaiterWakeup(t *testing.T) {
	t.Parallel()

	var n Notification
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.WaitForNotification()
		}()
	}
	n.Notify()
	wg.Wait()
}

func TestNotification_secondNotifyPanics(t *testing.T) {
	t.Parallel()

	var n Notification
	n.Notify()
	assert.Panics(t, func() { n.Notify() })
}

func TestNotification_waitAfterNotifyReturnsImmediately(t *testing.T) {
	t.Parallel()

	var n Notification
	n.Notify()
	n.WaitForNotification()
}
