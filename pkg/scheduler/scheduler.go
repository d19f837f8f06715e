package scheduler

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type queue[T any] []T

func (wq *queue[T]) Len() int { return len(*wq) }

func (wq *queue[T]) Pop() T {
	old := *wq
	x := old[0]
	var zero T
	old[0] = zero
	*wq = old[1:]
	return x
}

func (wq *queue[T]) Push(t T) {
	*wq = append(*wq, t)
}

// message is either a job to run or, when fn is nil, a terminate signal.
type message struct {
	fn func()
}

func (m message) terminate() bool { return m.fn == nil }

type worker struct {
	id   int
	pool *Pool
}

func (w worker) loop() {
	defer w.pool.wg.Done()
	for {
		msg := w.pool.next()
		if msg.terminate() {
			w.pool.log.Debugw("worker terminated", "worker", w.id)
			return
		}
		msg.fn()
	}
}

// Pool runs submitted jobs on a fixed set of worker goroutines draining a
// shared FIFO queue.
type Pool struct {
	size int
	log  *zap.SugaredLogger

	mu           sync.Mutex
	cond         *sync.Cond
	messages     *queue[message]
	cancellables []*cancellable
	closing      bool
	wg           sync.WaitGroup
	once         sync.Once
}

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger used by the pool.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(p *Pool) {
		p.log = l
	}
}

// NewPool starts a pool with size workers.
func NewPool(size int, opts ...Option) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	p := &Pool{
		size:     size,
		log:      zap.S().Named("scheduler"),
		messages: &queue[message]{},
	}
	p.cond = sync.NewCond(&p.mu)
	for _, opt := range opts {
		opt(p)
	}

	p.wg.Add(size)
	for id := range size {
		go worker{id: id, pool: p}.loop()
	}

	p.log.Debugw("pool started", "workers", size)
	return p, nil
}

// Exec queues job on the pool and returns its task. It never blocks. Once
// the pool is closing the returned task is already finished and cancelled.
func Exec[R any](p *Pool, job Job[R]) *Task[R] {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closing {
		return finishedTask[R]()
	}

	t := newTask[R]()
	p.messages.Push(message{fn: func() {
		t.run(job)
		if err := t.Err(); err != nil && !isCancelled(err) {
			p.log.Errorw("job failed", "error", err)
		}
	}})

	p.prune()
	p.cancellables = append(p.cancellables, t.c)

	p.cond.Signal()
	return t
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Pending returns the number of queued jobs no worker has picked up yet.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, m := range *p.messages {
		if !m.terminate() {
			n++
		}
	}
	return n
}

// Close sends one terminate message per worker behind the queued jobs,
// cancels every outstanding task and waits for all workers to exit.
// Queued jobs still run; they see their cancel flag set.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closing = true
		for range p.size {
			p.messages.Push(message{})
		}
		for _, c := range p.cancellables {
			c.cancel()
		}
		p.cancellables = nil
		p.cond.Broadcast()
		p.mu.Unlock()

		p.wg.Wait()
		p.log.Debugw("pool closed", "workers", p.size)
	})
}

func (p *Pool) next() message {
	p.mu.Lock()
	defer p.mu.Unlock()

	for p.messages.Len() == 0 {
		p.cond.Wait()
	}
	return p.messages.Pop()
}

// prune drops the handles of jobs that already finished. Caller holds mu.
func (p *Pool) prune() {
	live := p.cancellables[:0]
	for _, c := range p.cancellables {
		if !c.finished() {
			live = append(live, c)
		}
	}
	for i := len(live); i < len(p.cancellables); i++ {
		p.cancellables[i] = nil
	}
	p.cancellables = live
}

func fmtPanic(rec any) error {
	return fmt.Errorf("%w: %v", ErrJobPanicked, rec)
}

func isCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
