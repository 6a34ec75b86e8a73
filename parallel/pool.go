package parallel

import (
	"context"
	"runtime"
)

// PoolConfig configures Pool.Run.
type PoolConfig struct {
	// MaxWorkers is the maximum number of concurrent workers. A value of 1
	// selects the inline path; values <= 0 fall back to
	// DefaultPoolConfig's worker count.
	MaxWorkers int

	// TaskBufferSize is the buffer size of the internal task channel.
	// Default: MaxWorkers * 2.
	TaskBufferSize int
}

// DefaultPoolConfig returns a config sized to the machine, capped
// between 2 and 8 workers.
func DefaultPoolConfig() PoolConfig {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers < 2 {
		workers = 2
	}
	return PoolConfig{MaxWorkers: workers, TaskBufferSize: workers * 2}
}

// ProgressReporter receives one call per completed item when the pool runs
// inline (MaxWorkers == 1). It is never invoked when MaxWorkers > 1:
// progress reporting is only meaningful on the inline path.
type ProgressReporter func(done, total int)

// Result pairs a task's input with its output and any error.
type Result[T any, R any] struct {
	Input T
	Value R
	Err   error
}

// Pool runs a fixed function over a slice of inputs with bounded
// concurrency.
type Pool[T any, R any] struct {
	cfg      PoolConfig
	Progress ProgressReporter
}

// New returns a Pool configured by cfg, filling in defaults for zero
// fields.
func New[T any, R any](cfg PoolConfig) *Pool[T, R] {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = DefaultPoolConfig().MaxWorkers
	}
	if cfg.TaskBufferSize <= 0 {
		cfg.TaskBufferSize = cfg.MaxWorkers * 2
	}
	return &Pool[T, R]{cfg: cfg}
}

// Run applies fn to every item in inputs, returning one Result per input in
// input order. Cancellation of ctx is cooperative: fn is expected to check
// ctx itself for long-running work, and Run stops dispatching new items
// once ctx is done, leaving the remaining Results zero-valued with ctx's
// error.
func (p *Pool[T, R]) Run(ctx context.Context, inputs []T, fn func(context.Context, T) (R, error)) []Result[T, R] {
	if len(inputs) == 0 {
		return nil
	}
	results := make([]Result[T, R], len(inputs))

	if p.cfg.MaxWorkers == 1 {
		p.runInline(ctx, inputs, fn, results)
		return results
	}

	taskCh := make(chan int, p.cfg.TaskBufferSize)
	numWorkers := p.cfg.MaxWorkers
	if numWorkers > len(inputs) {
		numWorkers = len(inputs)
	}

	done := make(chan struct{})
	for w := 0; w < numWorkers; w++ {
		go func() {
			for idx := range taskCh {
				select {
				case <-ctx.Done():
					results[idx] = Result[T, R]{Input: inputs[idx], Err: ctx.Err()}
					continue
				default:
				}
				v, err := fn(ctx, inputs[idx])
				results[idx] = Result[T, R]{Input: inputs[idx], Value: v, Err: err}
			}
			done <- struct{}{}
		}()
	}

	go func() {
		defer close(taskCh)
		for i := range inputs {
			select {
			case <-ctx.Done():
				for j := i; j < len(inputs); j++ {
					results[j] = Result[T, R]{Input: inputs[j], Err: ctx.Err()}
				}
				return
			case taskCh <- i:
			}
		}
	}()

	for w := 0; w < numWorkers; w++ {
		<-done
	}
	return results
}

// runInline executes fn sequentially, reporting progress after every item
// when p.Progress is set.
func (p *Pool[T, R]) runInline(ctx context.Context, inputs []T, fn func(context.Context, T) (R, error), results []Result[T, R]) {
	for i, in := range inputs {
		if ctx.Err() != nil {
			results[i] = Result[T, R]{Input: in, Err: ctx.Err()}
			continue
		}
		v, err := fn(ctx, in)
		results[i] = Result[T, R]{Input: in, Value: v, Err: err}
		if p.Progress != nil {
			p.Progress(i+1, len(inputs))
		}
	}
}
