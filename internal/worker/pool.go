// Package worker provides the concurrency primitives shared by the engine
// (per-segment fan-out) and the batch CLI (per-file fan-out).
package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

// Pool executes jobs concurrently across a fixed number of workers. Result
// order is not guaranteed; jobs that care about ordering carry their own
// index for the caller to sort on.
type Pool struct {
	workers   int
	jobQueue  chan Job
	results   chan Result
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool with the specified number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, workers*2),
		results:  make(chan Result, workers*2),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Run executes all jobs and returns their results once every job has
// completed. Jobs are fed from a separate goroutine so the job count may
// exceed the channel capacity without deadlocking the collector.
func (p *Pool) Run(jobs []Job) []Result {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	go func() {
		for _, job := range jobs {
			select {
			case <-p.ctx.Done():
				close(p.jobQueue)
				return
			case p.jobQueue <- job:
			}
		}
		close(p.jobQueue)
	}()

	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	results := make([]Result, 0, len(jobs))
	for result := range p.results {
		results = append(results, result)
	}
	return results
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Shutdown cancels outstanding work
func (p *Pool) Shutdown() {
	p.cancel()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
