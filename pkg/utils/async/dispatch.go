package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Dispatch executes a handler function asynchronously with panic recovery.
// The handler runs on a background context that keeps the caller's logger,
// so it outlives the request that started it.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// Future is the pending result of a task started with Go
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go runs task in a goroutine on a background context and returns a Future
// to join it later. A panic in task is reported as the Future's error.
func Go[T any](ctx context.Context, task func(ctx context.Context) (T, error)) *Future[T] {
	newCtx := newBackgroundContext(ctx)
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async task",
					"recover", r,
					"stack", string(debug.Stack()),
				)
				f.err = goerr.New("panic in async task", goerr.V("recover", r))
			}
		}()

		f.value, f.err = task(newCtx)
	}()

	return f
}

// Wait blocks until the task finishes and returns its result
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}

// newBackgroundContext creates a new background context preserving the logger
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()

	if logger := ctxlog.From(ctx); logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}

	return newCtx
}
