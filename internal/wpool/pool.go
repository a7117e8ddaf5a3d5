// Package wpool provides a fixed-size worker pool fed from one shared
// channel and sized at hardware concurrency, used by the line engine to
// run origins in parallel and by the region engine to run its
// breadth-first expansion tree.
//
// Unlike a dynamically scaled pool, size here is fixed at construction:
// the search workload is CPU-bound numeric computation with no idle
// phases to scale down into, so the scaling/backpressure machinery a
// general task pool needs would be dead weight.
package wpool

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/cwbudde/stabregion/internal/cpu"
)

// Pool runs submitted tasks on a fixed number of worker goroutines.
//
// A panic inside any task is not recovered: it propagates out of the
// worker goroutine and crashes the process, per the design's "a panic in
// any worker aborts the whole process" policy (the CLI reports numerical
// non-finite results this way; configuration errors are returned as
// ordinary errors instead).
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once
	done  chan struct{}
}

// New starts a Pool sized at runtime.GOMAXPROCS(0), logging the detected
// CPU feature set alongside the chosen size as a startup diagnostic.
func New(logger *slog.Logger) *Pool {
	size := runtime.GOMAXPROCS(0)
	if logger != nil {
		features := cpu.DetectFeatures()
		logger.Info("starting worker pool",
			"workers", size,
			"arch", features.Architecture,
			"avx2", features.HasAVX2,
			"sse2", features.HasSSE2,
			"neon", features.HasNEON,
		)
	}

	p := &Pool{
		tasks: make(chan func()),
		done:  make(chan struct{}),
	}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			task()
		case <-p.done:
			return
		}
	}
}

// Submit enqueues a task, blocking until a worker picks it up or ctx is
// done.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wpool: submit canceled: %w", ctx.Err())
	case <-p.done:
		return fmt.Errorf("wpool: pool is shut down")
	}
}

// Shutdown stops accepting new tasks and waits for in-flight tasks to
// finish. Safe to call more than once.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.done)
	})
	p.wg.Wait()
}
