package async_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/muster/pkg/utils/async"
)

// waitGroup waits for wg or fails the test after timeout
func waitGroup(t *testing.T, wg *sync.WaitGroup, timeout time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal("Async handler did not complete within timeout")
	}
}

func TestDispatch(t *testing.T) {
	t.Run("Execute handler asynchronously", func(t *testing.T) {
		var wg sync.WaitGroup
		executed := false

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			executed = true
			return nil
		})

		waitGroup(t, &wg, time.Second)
		gt.True(t, executed)
	})

	t.Run("Handle errors in async handler", func(t *testing.T) {
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			return goerr.New("test error")
		})

		waitGroup(t, &wg, time.Second)
	})

	t.Run("Recover from panic in async handler", func(t *testing.T) {
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			panic("test panic")
		})

		waitGroup(t, &wg, time.Second)
	})

	t.Run("Handler outlives a cancelled caller context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var wg sync.WaitGroup
		var handlerErr error

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			handlerErr = ctx.Err()
			return nil
		})

		waitGroup(t, &wg, time.Second)
		gt.NoError(t, handlerErr)
	})

	t.Run("Logger is preserved in background context", func(t *testing.T) {
		ctx := ctxlog.With(context.Background(), ctxlog.From(context.Background()))

		var wg sync.WaitGroup
		var hasLogger bool

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			hasLogger = ctxlog.From(ctx) != nil
			return nil
		})

		waitGroup(t, &wg, time.Second)
		gt.True(t, hasLogger)
	})
}

func TestGo(t *testing.T) {
	t.Run("Wait returns the task result", func(t *testing.T) {
		f := async.Go(context.Background(), func(ctx context.Context) (int, error) {
			time.Sleep(10 * time.Millisecond)
			return 42, nil
		})

		v, err := f.Wait()
		gt.NoError(t, err)
		gt.Equal(t, 42, v)
	})

	t.Run("Wait returns the task error", func(t *testing.T) {
		f := async.Go(context.Background(), func(ctx context.Context) (string, error) {
			return "", goerr.New("failed")
		})

		_, err := f.Wait()
		gt.Error(t, err)
	})

	t.Run("Panic is reported as error", func(t *testing.T) {
		f := async.Go(context.Background(), func(ctx context.Context) (*int, error) {
			panic("boom")
		})

		v, err := f.Wait()
		gt.Error(t, err)
		gt.Nil(t, v)
	})

	t.Run("Wait can be called more than once", func(t *testing.T) {
		f := async.Go(context.Background(), func(ctx context.Context) (int, error) {
			return 1, nil
		})

		a, _ := f.Wait()
		b, _ := f.Wait()
		gt.Equal(t, a, b)
	})
}
