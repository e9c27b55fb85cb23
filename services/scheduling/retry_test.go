package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSleeper captures requested delays without actually sleeping.
func recordingSleeper(delays *[]time.Duration) Sleeper {
	return func(ctx context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestRunSleepsBeforeEachAttempt(t *testing.T) {
	var slept []time.Duration
	var attempts []int
	policy := RetryPolicy{
		Delays: []time.Duration{time.Second, 2 * time.Second, 3 * time.Second},
		Sleep:  recordingSleeper(&slept),
	}

	err := policy.Run(context.Background(), func(ctx context.Context, n int) (Outcome, error) {
		attempts = append(attempts, n)
		return Retriable, errors.New("not yet")
	})

	require.Error(t, err)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, slept)
	assert.Equal(t, []int{1, 2, 3}, attempts)
}

func TestRunStopsOnSuccess(t *testing.T) {
	var slept []time.Duration
	policy := RetryPolicy{
		Delays: []time.Duration{time.Second, 2 * time.Second, 3 * time.Second, 5 * time.Second},
		Sleep:  recordingSleeper(&slept),
	}

	err := policy.Run(context.Background(), func(ctx context.Context, n int) (Outcome, error) {
		if n == 3 {
			return Success, nil
		}
		return Retriable, errors.New("not yet")
	})

	require.NoError(t, err)
	// Attempt 3 fires after 1+2+3 seconds of scheduled waiting; the final
	// 5-second delay is never slept.
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, slept)
}

func TestRunStopsOnTerminal(t *testing.T) {
	var slept []time.Duration
	terminal := errors.New("bad request")
	policy := RetryPolicy{
		Delays: []time.Duration{time.Second, 2 * time.Second},
		Sleep:  recordingSleeper(&slept),
	}

	err := policy.Run(context.Background(), func(ctx context.Context, n int) (Outcome, error) {
		return Terminal, terminal
	})

	assert.ErrorIs(t, err, terminal)
	assert.Len(t, slept, 1)
}

func TestRunReturnsLastRetriableError(t *testing.T) {
	last := errors.New("attempt 2 failed")
	policy := RetryPolicy{
		Delays: []time.Duration{time.Second, 2 * time.Second},
		Sleep:  recordingSleeper(&[]time.Duration{}),
	}

	err := policy.Run(context.Background(), func(ctx context.Context, n int) (Outcome, error) {
		if n == 1 {
			return Retriable, errors.New("attempt 1 failed")
		}
		return Retriable, last
	})

	assert.ErrorIs(t, err, last)
}

func TestRunHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := CheckoutURLPolicy.Run(ctx, func(ctx context.Context, n int) (Outcome, error) {
		t.Fatal("attempt should not run after cancellation")
		return Success, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAttemptCountEqualsScheduleLength(t *testing.T) {
	count := 0
	policy := RetryPolicy{
		Delays: BookingLookupPolicy.Delays,
		Sleep:  recordingSleeper(&[]time.Duration{}),
	}

	_ = policy.Run(context.Background(), func(ctx context.Context, n int) (Outcome, error) {
		count++
		return Retriable, errors.New("never")
	})

	assert.Equal(t, len(BookingLookupPolicy.Delays), count)
}

func TestFixedSchedules(t *testing.T) {
	assert.Equal(t, []time.Duration{
		1 * time.Second, 2 * time.Second, 3 * time.Second, 5 * time.Second,
	}, CheckoutURLPolicy.Delays)
	assert.Equal(t, 11*time.Second, CheckoutURLPolicy.TotalWait())

	assert.Equal(t, []time.Duration{
		1500 * time.Millisecond, 3 * time.Second, 6 * time.Second, 9 * time.Second, 12 * time.Second,
	}, BookingLookupPolicy.Delays)
	assert.Equal(t, 31500*time.Millisecond, BookingLookupPolicy.TotalWait())
}
