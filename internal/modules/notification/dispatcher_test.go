package notification

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_RunsJob(t *testing.T) {
	d := NewDispatcher(8, 1, 0, 0)

	done := make(chan struct{})
	ok := d.Enqueue("test", func() error {
		close(done)
		return nil
	})
	assert.True(t, ok)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}
	d.Shutdown()
}

func TestDispatcher_RetriesUntilSuccess(t *testing.T) {
	d := NewDispatcher(8, 1, 3, time.Millisecond)

	var calls int32
	done := make(chan struct{})
	d.Enqueue("flaky", func() error {
		n := atomic.AddInt32(&calls, 1)
		if n < 3 {
			return errors.New("transient")
		}
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job never succeeded")
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	d.Shutdown()
}

func TestDispatcher_GivesUpAfterMaxRetries(t *testing.T) {
	d := NewDispatcher(8, 1, 2, time.Millisecond)

	var calls int32
	d.Enqueue("doomed", func() error {
		atomic.AddInt32(&calls, 1)
		return errors.New("permanent")
	})

	d.Shutdown()
	// First attempt plus two retries.
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	d := NewDispatcher(1, 1, 0, 0)

	block := make(chan struct{})
	d.Enqueue("blocker", func() error {
		<-block
		return nil
	})
	// Give the worker time to pick up the blocker so the queue is empty,
	// then fill it and overflow.
	time.Sleep(20 * time.Millisecond)
	d.Enqueue("queued", func() error { return nil })

	ok := d.Enqueue("overflow", func() error { return nil })
	assert.False(t, ok)

	close(block)
	d.Shutdown()
}

func TestDispatcher_RejectsAfterShutdown(t *testing.T) {
	d := NewDispatcher(8, 1, 0, 0)
	d.Shutdown()

	ok := d.Enqueue("late", func() error { return nil })
	assert.False(t, ok)
}
