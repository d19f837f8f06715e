package scheduler

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrCancelled is reported by Task.Err when the job finished without a
	// result after cancellation had been requested.
	ErrCancelled = errors.New("task cancelled")
	// ErrJobPanicked is wrapped by Task.Err when the job panicked.
	ErrJobPanicked = errors.New("job panicked")
	// ErrInvalidSize is returned by NewPool for a non-positive worker count.
	ErrInvalidSize = errors.New("pool size must be greater than zero")
)

// CancelCheck reports whether the job has been asked to stop.
type CancelCheck func() bool

// Job is a one-shot unit of work. The boolean result is false when the job
// has no usable result, e.g. because it bailed out after a cancel check.
type Job[R any] func(cancelled CancelCheck) (R, bool)

// cancellable is the part of a task the pool keeps track of.
type cancellable struct {
	flag atomic.Bool
	done chan struct{}
}

func newCancellable() *cancellable {
	return &cancellable{done: make(chan struct{})}
}

func (c *cancellable) cancel() {
	if !c.finished() {
		c.flag.Store(true)
	}
}

func (c *cancellable) cancelled() bool {
	return c.flag.Load()
}

func (c *cancellable) finished() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

type slot[R any] struct {
	mu    sync.Mutex
	value R
	ok    bool
	err   error
}

// Task is the handle of a submitted job. Copies of a Task share the same
// cancellation flag and result slot.
type Task[R any] struct {
	c      *cancellable
	result *slot[R]
}

// Cancel asks the job to stop. It has no effect once the job finished.
func (t *Task[R]) Cancel() {
	t.c.cancel()
}

// Done returns a channel closed when the job has finished running.
func (t *Task[R]) Done() <-chan struct{} {
	return t.c.done
}

// Wait blocks until the job has finished running. A job that is still
// queued and a job that is running are both reported as not finished.
func (t *Task[R]) Wait() {
	<-t.c.done
}

// Get waits for the job and takes its result out of the task. The value is
// handed out at most once: later calls return the zero value and false.
func (t *Task[R]) Get() (R, bool) {
	t.Wait()

	t.result.mu.Lock()
	defer t.result.mu.Unlock()

	v, ok := t.result.value, t.result.ok
	var zero R
	t.result.value, t.result.ok = zero, false
	return v, ok
}

// Err reports why a finished job produced no result. It returns nil while
// the job is pending and when the job completed normally.
func (t *Task[R]) Err() error {
	if !t.c.finished() {
		return nil
	}
	t.result.mu.Lock()
	defer t.result.mu.Unlock()
	return t.result.err
}

// Cancelled reports whether cancellation has been requested.
func (t *Task[R]) Cancelled() bool {
	return t.c.cancelled()
}

func (t *Task[R]) run(job Job[R]) {
	defer close(t.c.done)
	defer func() {
		if rec := recover(); rec != nil {
			var zero R
			t.store(zero, false, fmtPanic(rec))
		}
	}()

	v, ok := job(t.c.cancelled)

	var err error
	if !ok && t.c.cancelled() {
		err = ErrCancelled
	}
	t.store(v, ok, err)
}

func (t *Task[R]) store(v R, ok bool, err error) {
	t.result.mu.Lock()
	defer t.result.mu.Unlock()
	t.result.value, t.result.ok, t.result.err = v, ok, err
}

func newTask[R any]() *Task[R] {
	return &Task[R]{
		c:      newCancellable(),
		result: &slot[R]{},
	}
}

// finishedTask returns a task that never ran and reports ErrCancelled.
func finishedTask[R any]() *Task[R] {
	t := newTask[R]()
	t.c.flag.Store(true)
	t.result.err = ErrCancelled
	close(t.c.done)
	return t
}
