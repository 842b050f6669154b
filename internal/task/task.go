// Package task runs background work on a bounded pool and hands callers a
// handle they may await or drop.
package task

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Result is the outcome of a finished task: exactly one of Value or Err is
// meaningful.
type Result[T any] struct {
	Value T
	Err   error
}

func (r Result[T]) Unwrap() (T, error) {
	return r.Value, r.Err
}

// Task is a handle to work submitted to a Pool. It completes exactly once.
type Task[T any] struct {
	done chan struct{}
	res  Result[T]
}

// Done is closed when the task has finished.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes or ctx ends. Abandoning the wait does
// not cancel the task.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.res.Unwrap()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the outcome without blocking; ok is false while running.
func (t *Task[T]) Result() (res Result[T], ok bool) {
	select {
	case <-t.done:
		return t.res, true
	default:
		return Result[T]{}, false
	}
}

// Done returns an already finished task. Useful for rejecting an intent
// before any work is scheduled.
func Done[T any](value T, err error) *Task[T] {
	t := &Task[T]{done: make(chan struct{}), res: Result[T]{Value: value, Err: err}}
	close(t.done)
	return t
}

// Pool bounds the number of tasks running at once.
type Pool struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(workers))}
}

// Wait blocks until every submitted task has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Submit schedules fn and returns immediately. fn runs once a worker slot
// is free; if ctx ends first, the task finishes with ctx.Err() without
// running fn. A panic in fn becomes the task's error.
func Submit[T any](p *Pool, ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer close(t.done)

		if err := p.sem.Acquire(ctx, 1); err != nil {
			t.res.Err = err
			return
		}
		defer p.sem.Release(1)

		defer func() {
			if r := recover(); r != nil {
				t.res = Result[T]{Err: fmt.Errorf("task panic: %v", r)}
			}
		}()
		t.res.Value, t.res.Err = fn(ctx)
	}()
	return t
}
