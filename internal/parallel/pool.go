// Package parallel provides the worker pool that drives frame processing.
//
// Every pixel of the post-process transform is independent, so a frame
// splits naturally into row-range tasks with no locking and no ordering
// between them. The pool keeps one queue per worker and lets idle workers
// steal from the others, which balances load when some rows are more
// expensive (e.g. rows full of HDR pixels hitting the crosstalk path).
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines with per-worker queues and
// work stealing.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and wait for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Run distributes tasks round-robin across the workers and blocks until
// every task has completed. If the pool is closed, Run is a no-op.
func (p *Pool) Run(tasks []func()) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))

	for i, task := range tasks {
		t := task
		wrapped := func() {
			defer wg.Done()
			t()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wg.Done()
		}
	}

	wg.Wait()
}

// Close stops the workers after draining their queues.
// The pool accepts no work after Close.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	mine := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(mine)
			return
		case task := <-mine:
			if task != nil {
				task()
			}
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			// Nothing to steal anywhere, block on own queue.
			select {
			case <-p.done:
				drain(mine)
				return
			case task := <-mine:
				if task != nil {
					task()
				}
			}
		}
	}
}

// steal takes one task from another worker's queue, or returns nil if every
// other queue is empty.
func (p *Pool) steal(myID int) func() {
	for i := 0; i < p.workers; i++ {
		if i == myID {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// drain runs all tasks left in a queue.
func drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			if task != nil {
				task()
			}
		default:
			return
		}
	}
}
