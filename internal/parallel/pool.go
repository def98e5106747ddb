package parallel

import (
	"runtime"
	"sync"
)

// task is one queued job together with the batch it belongs to.
type task struct {
	fn    func()
	batch *sync.WaitGroup
}

func (t task) run() {
	defer t.batch.Done()
	t.fn()
}

// WorkerPool runs band jobs on a fixed set of goroutines.
//
// Each worker owns a queue. A worker whose queue is empty steals from the
// other queues before blocking, so a slow band does not hold up the rest.
//
// Thread safety: WorkerPool is safe for concurrent use, including Close
// racing with ExecuteAll.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds one buffered queue per worker.
	queues []chan task

	// done is closed by Close. Workers empty their queue and exit.
	done chan struct{}

	// mu orders enqueueing against Close: submitters hold it shared while
	// they fill queues, Close holds it exclusively while closing done.
	mu     sync.RWMutex
	closed bool

	// wg tracks the worker goroutines.
	wg sync.WaitGroup
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A few bands per worker fit without blocking the submitter.
	depth := max(workers*bandsPerWorker, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan task, workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan task, depth)
	}

	p.wg.Add(workers)
	for i := range workers {
		go p.loop(i)
	}
	return p
}

// loop runs tasks for worker id until the pool is closed and its queue is
// empty.
func (p *WorkerPool) loop(id int) {
	defer p.wg.Done()
	for {
		t, ok := p.next(id)
		if !ok {
			return
		}
		t.run()
	}
}

// next returns the worker's next task: its own queue first, then a stolen
// one, then whatever arrives. ok is false once the pool is closed and the
// worker's queue is empty.
func (p *WorkerPool) next(id int) (t task, ok bool) {
	own := p.queues[id]

	select {
	case t = <-own:
		return t, true
	default:
	}

	for i := 1; i < p.workers; i++ {
		select {
		case t = <-p.queues[(id+i)%p.workers]:
			return t, true
		default:
		}
	}

	select {
	case t = <-own:
		return t, true
	case <-p.done:
		// No task can be enqueued after done is closed, so one
		// non-blocking look is enough.
		select {
		case t = <-own:
			return t, true
		default:
			return task{}, false
		}
	}
}

// ExecuteAll distributes jobs round-robin and blocks until every job has run.
// It reports false without running anything if the pool is closed.
func (p *WorkerPool) ExecuteAll(jobs []func()) bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}

	var batch sync.WaitGroup
	batch.Add(len(jobs))
	for i, fn := range jobs {
		// Workers keep consuming while the lock is held shared, so a full
		// queue only delays this send.
		p.queues[i%p.workers] <- task{fn: fn, batch: &batch}
	}
	p.mu.RUnlock()

	batch.Wait()
	return true
}

// ExecuteBands runs fn once per band and waits for all of them.
func (p *WorkerPool) ExecuteBands(bands []Band, fn func(Band)) bool {
	jobs := make([]func(), len(bands))
	for i, b := range bands {
		jobs[i] = func() { fn(b) }
	}
	return p.ExecuteAll(jobs)
}

// Close stops accepting work, lets queued jobs finish and stops the workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.closed
}
