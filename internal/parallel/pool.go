// Package parallel schedules row bands of an image across a short-lived
// pool of goroutines.
//
// A pool lives for a single driver invocation: the caller creates it,
// hands it the work and closes it before returning, so no goroutine
// outlives the operation that spawned it.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines executing row bands.
//
// Each worker owns a queue. A worker whose queue is empty steals from
// the others, which keeps bands of uneven cost balanced.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int

	// workQueues holds per-worker work queues.
	workQueues []chan func()

	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drainQueue(own)
			return
		case work := <-own:
			if work != nil {
				work()
			}
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(own)
				return
			case work := <-own:
				if work != nil {
					work()
				}
			}
		}
	}
}

func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all of it to
// complete. If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(work))

	for i, fn := range work {
		wrapped := func() {
			defer pending.Done()
			fn()
		}
		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			pending.Done()
		}
	}

	pending.Wait()
}

// ParallelFor splits [0, n) into contiguous ranges and calls fn(start, end)
// for each range on the pool, returning once every range is done.
func (p *WorkerPool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	chunks := min(p.workers, n)
	size := (n + chunks - 1) / chunks

	work := make([]func(), 0, chunks)
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		work = append(work, func() { fn(start, end) })
	}
	p.ExecuteAll(work)
}

// Close stops accepting work, waits for queued work to finish and stops
// the workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// minRowsPerBand keeps tiny images on the calling goroutine.
const minRowsPerBand = 16

// Rows calls fn over [0, height) split into row bands. With workers <= 1,
// or too few rows to be worth splitting, fn runs once on the calling
// goroutine. Otherwise a pool is created for the call and closed before
// Rows returns.
func Rows(workers, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, height/minRowsPerBand)
	if workers <= 1 {
		fn(0, height)
		return
	}

	p := NewWorkerPool(workers)
	defer p.Close()
	p.ParallelFor(height, fn)
}
