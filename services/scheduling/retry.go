package scheduling

import (
	"context"
	"fmt"
	"time"
)

// Outcome classifies a single retry attempt.
type Outcome int

const (
	// Success ends the loop with a nil error.
	Success Outcome = iota
	// Retriable moves on to the next scheduled attempt.
	Retriable
	// Terminal ends the loop immediately with the attempt's error.
	Terminal
)

// Sleeper waits for d or until the context is done. Tests inject a fake.
type Sleeper func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Attempt runs one try; n is 1-based.
type Attempt func(ctx context.Context, n int) (Outcome, error)

// RetryPolicy is a fixed delay schedule against an eventually-consistent
// backend. Each entry is one wait-then-attempt; the number of attempts equals
// the schedule length and the worst-case wall-clock wait equals TotalWait.
// There is no unbounded or exponential growth, keeping the user-visible
// ceiling auditable.
type RetryPolicy struct {
	Delays []time.Duration
	Sleep  Sleeper
}

// Fixed schedules used by the checkout flows. The shorter one backs
// checkout-URL generation; the longer one backs the booking lookup performed
// during checkout session creation.
var (
	CheckoutURLPolicy = RetryPolicy{
		Delays: []time.Duration{1 * time.Second, 2 * time.Second, 3 * time.Second, 5 * time.Second},
	}
	BookingLookupPolicy = RetryPolicy{
		Delays: []time.Duration{1500 * time.Millisecond, 3 * time.Second, 6 * time.Second, 9 * time.Second, 12 * time.Second},
	}
)

// TotalWait is the worst-case wall-clock time spent sleeping.
func (p RetryPolicy) TotalWait() time.Duration {
	var total time.Duration
	for _, d := range p.Delays {
		total += d
	}
	return total
}

// Run executes attempts against the schedule. Each scheduled delay is slept
// before its attempt, strictly sequentially. The last retriable error is
// returned once the schedule is exhausted.
func (p RetryPolicy) Run(ctx context.Context, attempt Attempt) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = defaultSleep
	}

	var lastErr error
	for i, delay := range p.Delays {
		if err := sleep(ctx, delay); err != nil {
			return err
		}

		outcome, err := attempt(ctx, i+1)
		switch outcome {
		case Success:
			return nil
		case Terminal:
			return err
		default:
			lastErr = err
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("retry schedule exhausted after %d attempts", len(p.Delays))
	}
	return lastErr
}
