// Package parallel runs per-row field computations on a pool of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// bandsPerWorker is how many row bands each worker gets on average, so a
// slow band does not leave the other workers idle.
const bandsPerWorker = 4

// WorkerPool is a pool of goroutines for row-parallel field computation.
//
// Each worker owns a queue and steals from the other queues when its own is
// empty, which balances bands whose cost differs.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}
	wg   sync.WaitGroup

	// mu orders Close after in-flight submissions: ExecuteAll holds the read
	// lock while it enqueues, Close the write lock while it stops the pool.
	mu sync.RWMutex
	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*bandsPerWorker, 8)

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

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			work()

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			// Nothing anywhere, block on own queue.
			select {
			case <-p.done:
				p.drainQueue(myQueue)
				return
			case work := <-myQueue:
				work()
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
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
// complete. Once the pool is closed, work runs on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for _, fn := range work {
			fn()
		}
		return
	}

	var completionWG sync.WaitGroup
	completionWG.Add(len(work))

	for i, fn := range work {
		wrapped := func() {
			defer completionWG.Done()
			fn()
		}

		// Workers outlive the read lock, so a full queue always drains.
		p.workQueues[i%p.workers] <- wrapped
	}
	p.mu.RUnlock()

	completionWG.Wait()
}

// Rows splits [0, rows) into contiguous bands, runs fn on each band in
// parallel and returns when every band is done. Bands never overlap, so fn
// may write its rows of a shared buffer without locking.
func (p *WorkerPool) Rows(rows int, fn func(y0, y1 int)) {
	if rows <= 0 {
		return
	}
	bands := Bands(rows, p.workers*bandsPerWorker)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b[0], b[1]) }
	}
	p.ExecuteAll(work)
}

// Bands splits [0, rows) into at most n contiguous [y0, y1) ranges whose
// sizes differ by at most one.
func Bands(rows, n int) [][2]int {
	if rows <= 0 {
		return nil
	}
	n = min(max(n, 1), rows)
	out := make([][2]int, 0, n)
	size, extra := rows/n, rows%n
	y := 0
	for i := range n {
		h := size
		if i < extra {
			h++
		}
		out = append(out, [2]int{y, y + h})
		y += h
	}
	return out
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.Load() {
		p.mu.Unlock()
		return
	}
	p.running.Store(false)
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
