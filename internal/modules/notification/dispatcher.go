package notification

import (
	"log"
	"sync"
	"time"
)

// job is one delivery attempt unit. attempt counts completed tries.
type job struct {
	name    string
	run     func() error
	attempt int
}

// Dispatcher runs notification side effects off the request path with a
// bounded queue and per-job retry. A full queue drops the job rather than
// blocking a booking transition.
type Dispatcher struct {
	queue      chan job
	maxRetries int
	backoff    time.Duration

	mu     sync.RWMutex
	wg     sync.WaitGroup
	closed bool
}

func NewDispatcher(queueSize, workers, maxRetries int, backoff time.Duration) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	if workers <= 0 {
		workers = 1
	}
	d := &Dispatcher{
		queue:      make(chan job, queueSize),
		maxRetries: maxRetries,
		backoff:    backoff,
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Enqueue schedules fn for asynchronous execution. Returns false if the
// queue is full or the dispatcher is shut down.
func (d *Dispatcher) Enqueue(name string, fn func() error) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return false
	}
	select {
	case d.queue <- job{name: name, run: fn}:
		return true
	default:
		log.Printf("notification: queue full, dropping job=%s", name)
		return false
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for j := range d.queue {
		d.execute(j)
	}
}

func (d *Dispatcher) execute(j job) {
	err := j.run()
	if err == nil {
		return
	}
	j.attempt++
	if j.attempt > d.maxRetries {
		log.Printf("notification: job=%s failed after %d attempts: %v", j.name, j.attempt, err)
		return
	}
	// Linear backoff keeps retries spaced without a timer heap.
	time.Sleep(d.backoff * time.Duration(j.attempt))
	d.execute(j)
}

// Shutdown drains the queue and stops the workers.
func (d *Dispatcher) Shutdown() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	d.wg.Wait()
}
