package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/model"
)

// Outcome classifies how a retried operation ended
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeCreated
	OutcomeAlreadyExists
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeAlreadyExists:
		return "already_exists"
	default:
		return "failed"
	}
}

// Attempt is the result of RetryPolicy execution
type Attempt[T any] struct {
	Value    T
	Outcome  Outcome
	Attempts int   // Number of times the operation was invoked
	Err      error // Last failure when Outcome is OutcomeFailed
}

// Succeeded reports whether the resource exists after the attempt
func (a Attempt[T]) Succeeded() bool {
	return a.Outcome == OutcomeCreated || a.Outcome == OutcomeAlreadyExists
}

// Classifier decides how results and failures of an operation are treated
type Classifier[T any] struct {
	// IsTerminalSuccess reports whether a successful result is final. Nil
	// accepts every result returned without error.
	IsTerminalSuccess func(T) bool

	// IsConflict reports whether the failure means the resource already
	// exists. Nil uses model.IsAlreadyExists.
	IsConflict func(error) bool

	// IsRetryable reports whether a non-conflict failure may be retried. Nil
	// retries every failure.
	IsRetryable func(error) bool

	// ResolveExisting fetches the existing resource after a conflict. Nil
	// returns the zero value.
	ResolveExisting func(ctx context.Context) (T, error)
}

// SleepFunc waits for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// RetryPolicy is a bounded retry budget with a fixed delay between attempts
type RetryPolicy struct {
	Name        string
	MaxAttempts int
	Delay       time.Duration
	Sleep       SleepFunc // Nil uses a timer
}

// Retry budgets tuned per remote operation
var (
	TeamCreationPolicy = RetryPolicy{Name: "team", MaxAttempts: 15, Delay: 5 * time.Second}
	TagCreationPolicy  = RetryPolicy{Name: "tag", MaxAttempts: 5}
	ChannelPolicy      = RetryPolicy{Name: "channel", MaxAttempts: 3}
)

// WithSleep returns a copy of the policy using sleep between attempts
func (p RetryPolicy) WithSleep(sleep SleepFunc) RetryPolicy {
	p.Sleep = sleep
	return p
}

// WithMaxAttempts returns a copy of the policy with another budget
func (p RetryPolicy) WithMaxAttempts(n int) RetryPolicy {
	p.MaxAttempts = n
	return p
}

func (p RetryPolicy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	return sleepContext(ctx, d)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Execute runs op until it succeeds, reports a conflict, fails with a
// non-retryable error, or the budget is exhausted. Attempts are sequential
// and separated by the policy delay.
func Execute[T any](ctx context.Context, p RetryPolicy, c Classifier[T], op func(ctx context.Context) (T, error)) Attempt[T] {
	logger := ctxlog.From(ctx).With("policy", p.Name)

	isConflict := c.IsConflict
	if isConflict == nil {
		isConflict = model.IsAlreadyExists
	}

	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var result Attempt[T]
	for i := 1; i <= maxAttempts; i++ {
		result.Attempts = i

		value, err := op(ctx)
		switch {
		case err == nil && (c.IsTerminalSuccess == nil || c.IsTerminalSuccess(value)):
			result.Value = value
			result.Outcome = OutcomeCreated
			result.Err = nil
			return result

		case err == nil:
			result.Err = goerr.Wrap(model.ErrUnexpectedResult, "result is not terminal",
				goerr.V("policy", p.Name),
				goerr.V("attempt", i))

		case isConflict(err):
			logger.Debug("Resource already exists", "attempt", i)
			if c.ResolveExisting != nil {
				existing, rerr := c.ResolveExisting(ctx)
				if rerr != nil {
					result.Outcome = OutcomeFailed
					result.Err = goerr.Wrap(rerr, "failed to fetch existing resource",
						goerr.V("policy", p.Name))
					return result
				}
				result.Value = existing
			}
			result.Outcome = OutcomeAlreadyExists
			result.Err = nil
			return result

		case c.IsRetryable != nil && !c.IsRetryable(err):
			result.Outcome = OutcomeFailed
			result.Err = err
			return result

		default:
			result.Err = err
		}

		if i == maxAttempts {
			break
		}

		logger.Debug("Retrying operation", "attempt", i, "delay", p.Delay, "error", result.Err)
		if err := p.sleep(ctx, p.Delay); err != nil {
			result.Err = goerr.Wrap(err, "retry wait interrupted", goerr.V("policy", p.Name))
			break
		}
	}

	result.Outcome = OutcomeFailed
	return result
}
