// Package executor runs similarity computations off the caller's thread on
// a fixed pool of workers. Jobs are queued FIFO and each carries a one-shot
// completion owned by the submitter. Shutdown is cooperative: workers
// finish the task in hand, pending jobs are aborted, and submissions after
// shutdown are rejected.
package executor

import (
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/standardbeagle/textsim/internal/debug"
	simerrors "github.com/standardbeagle/textsim/internal/errors"
)

type job struct {
	id  string
	run func()
	// abort delivers the job's one-shot when it will never run.
	abort func()
}

// Pool is a fixed-size worker pool over an internally unbounded FIFO queue.
type Pool struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []job
	shutdown bool

	workers sync.WaitGroup
}

// NewPool starts a pool of the given size; sizes below one select the
// logical core count.
func NewPool(size int) *Pool {
	if size < 1 {
		size = runtime.GOMAXPROCS(0)
	}
	if size < 1 {
		size = 1
	}

	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)

	p.workers.Add(size)
	for i := 0; i < size; i++ {
		go p.workerLoop()
	}
	return p
}

// Submit enqueues a job. run computes and delivers the outcome; abort is
// invoked instead if the pool shuts down before the job starts. After
// shutdown Submit returns a ThreadingError and invokes neither.
func (p *Pool) Submit(run, abort func()) error {
	id := uuid.NewString()

	p.mu.Lock()
	if p.shutdown {
		p.mu.Unlock()
		return simerrors.NewThreadingError("executor is shut down")
	}
	p.queue = append(p.queue, job{id: id, run: run, abort: abort})
	p.mu.Unlock()

	p.cond.Signal()
	return nil
}

func (p *Pool) workerLoop() {
	defer p.workers.Done()

	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.shutdown {
			p.cond.Wait()
		}
		if p.shutdown {
			p.mu.Unlock()
			return
		}
		j := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		j.run()
	}
}

// Shutdown stops the pool: the flag is raised, every worker is woken,
// workers drain the task in hand and exit, and jobs still queued are
// aborted so their completions are always delivered. Safe to call more
// than once.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if p.shutdown {
		p.mu.Unlock()
		return
	}
	p.shutdown = true
	pending := p.queue
	p.queue = nil
	p.mu.Unlock()

	p.cond.Broadcast()
	p.workers.Wait()

	for _, j := range pending {
		debug.Logf("executor: aborting queued job %s after shutdown", j.id)
		if j.abort != nil {
			j.abort()
		}
	}
}
