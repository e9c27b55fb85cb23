package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"moveflow/httpServices/bookingcore"
	"moveflow/models"
	"moveflow/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockAPI scripts the upstream booking backend.
type mockAPI struct {
	createResult *models.Booking
	createErr    error
	createCalls  int

	// getBooking answers indexed by call number (1-based); the last entry
	// repeats once exhausted.
	getAnswers []getAnswer
	getCalls   int

	alternatives []models.AlternativeSlot
	altErr       error
}

type getAnswer struct {
	booking *models.Booking
	err     error
}

func (m *mockAPI) CreateBooking(ctx context.Context, req bookingcore.CreateBookingRequest) (*models.Booking, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.createResult, nil
}

func (m *mockAPI) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	m.getCalls++
	idx := m.getCalls - 1
	if idx >= len(m.getAnswers) {
		idx = len(m.getAnswers) - 1
	}
	a := m.getAnswers[idx]
	return a.booking, a.err
}

func (m *mockAPI) ListAvailableTimes(ctx context.Context, serviceID, date string) ([]models.AlternativeSlot, error) {
	if m.altErr != nil {
		return nil, m.altErr
	}
	return m.alternatives, nil
}

// mockCheckout scripts the payment provider.
type mockCheckout struct {
	session *models.CheckoutSession
	errs    []error // per-call; last entry repeats
	calls   int
	lastReq CheckoutRequest
}

func (m *mockCheckout) CreateSession(ctx context.Context, req CheckoutRequest) (*models.CheckoutSession, error) {
	m.calls++
	m.lastReq = req
	if len(m.errs) > 0 {
		idx := m.calls - 1
		if idx >= len(m.errs) {
			idx = len(m.errs) - 1
		}
		if err := m.errs[idx]; err != nil {
			return nil, err
		}
	}
	return m.session, nil
}

// instantPolicy keeps the fixed attempt counts but skips the real sleeping.
func instantPolicy(base scheduling.RetryPolicy, slept *[]time.Duration) scheduling.RetryPolicy {
	return scheduling.RetryPolicy{
		Delays: base.Delays,
		Sleep: func(ctx context.Context, d time.Duration) error {
			if slept != nil {
				*slept = append(*slept, d)
			}
			return nil
		},
	}
}

func notVisibleYet() getAnswer {
	return getAnswer{err: bookingcore.NewNotFoundError("booking not found")}
}

func visible(id string) getAnswer {
	return getAnswer{booking: &models.Booking{ID: id, Status: "pending"}}
}

func TestGenerateCheckoutURLWaitsOutReplicationLag(t *testing.T) {
	api := &mockAPI{
		getAnswers: []getAnswer{notVisibleYet(), notVisibleYet(), visible("bk-1")},
	}
	checkout := &mockCheckout{session: &models.CheckoutSession{ID: "cs-1", URL: "https://pay.example/cs-1"}}
	var slept []time.Duration

	o := &DefaultOrchestrator{
		API:            api,
		Checkout:       checkout,
		Logger:         zap.NewNop(),
		CheckoutPolicy: instantPolicy(scheduling.CheckoutURLPolicy, &slept),
	}

	session, err := o.GenerateCheckoutURL(context.Background(), "bk-1", CheckoutRequest{BookingID: "bk-1"})
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example/cs-1", session.URL)
	assert.Equal(t, 3, api.getCalls)
	assert.Equal(t, 1, checkout.calls)
	// The third attempt fires after the first three scheduled delays.
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 3 * time.Second}, slept)
}

func TestGenerateCheckoutURLBookingNeverVisible(t *testing.T) {
	api := &mockAPI{getAnswers: []getAnswer{notVisibleYet()}}
	checkout := &mockCheckout{session: &models.CheckoutSession{ID: "cs-1"}}

	o := &DefaultOrchestrator{
		API:            api,
		Checkout:       checkout,
		Logger:         zap.NewNop(),
		CheckoutPolicy: instantPolicy(scheduling.CheckoutURLPolicy, nil),
	}

	_, err := o.GenerateCheckoutURL(context.Background(), "bk-404", CheckoutRequest{})

	require.Error(t, err)
	assert.True(t, bookingcore.IsNotFound(err))
	assert.Equal(t, len(scheduling.CheckoutURLPolicy.Delays), api.getCalls)
	assert.Zero(t, checkout.calls)
}

func TestGenerateCheckoutURLRetriesTransientCheckoutFailure(t *testing.T) {
	api := &mockAPI{getAnswers: []getAnswer{visible("bk-1")}}
	checkout := &mockCheckout{
		session: &models.CheckoutSession{ID: "cs-1", URL: "https://pay.example/cs-1"},
		errs:    []error{errors.New("stripe 500"), nil},
	}

	o := &DefaultOrchestrator{
		API:            api,
		Checkout:       checkout,
		Logger:         zap.NewNop(),
		CheckoutPolicy: instantPolicy(scheduling.CheckoutURLPolicy, nil),
	}

	session, err := o.GenerateCheckoutURL(context.Background(), "bk-1", CheckoutRequest{})
	require.NoError(t, err)
	assert.Equal(t, "cs-1", session.ID)
	assert.Equal(t, 2, checkout.calls)
}

func TestGenerateCheckoutURLCheckoutKeepsFailing(t *testing.T) {
	api := &mockAPI{getAnswers: []getAnswer{visible("bk-1")}}
	stripeErr := errors.New("stripe down")
	checkout := &mockCheckout{errs: []error{stripeErr}}

	o := &DefaultOrchestrator{
		API:            api,
		Checkout:       checkout,
		Logger:         zap.NewNop(),
		CheckoutPolicy: instantPolicy(scheduling.CheckoutURLPolicy, nil),
	}

	_, err := o.GenerateCheckoutURL(context.Background(), "bk-1", CheckoutRequest{})

	require.Error(t, err)
	// The booking surfaced, so this is a checkout failure, not a not-found.
	assert.False(t, bookingcore.IsNotFound(err))
	assert.ErrorIs(t, err, stripeErr)
}

func TestGenerateCheckoutURLTerminalLookupError(t *testing.T) {
	api := &mockAPI{
		getAnswers: []getAnswer{{err: errors.New("401 unauthorized")}},
	}
	o := &DefaultOrchestrator{
		API:            api,
		Checkout:       &mockCheckout{},
		Logger:         zap.NewNop(),
		CheckoutPolicy: instantPolicy(scheduling.CheckoutURLPolicy, nil),
	}

	_, err := o.GenerateCheckoutURL(context.Background(), "bk-1", CheckoutRequest{})

	require.Error(t, err)
	var sysErr *SystemError
	assert.ErrorAs(t, err, &sysErr)
	assert.Equal(t, 1, api.getCalls)
}

func TestGenerateCheckoutURLCancellationIsNotNotFound(t *testing.T) {
	api := &mockAPI{getAnswers: []getAnswer{notVisibleYet()}}
	o := &DefaultOrchestrator{
		API:      api,
		Checkout: &mockCheckout{},
		Logger:   zap.NewNop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.GenerateCheckoutURL(ctx, "bk-1", CheckoutRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, bookingcore.IsNotFound(err))
	assert.Zero(t, api.getCalls)
}

func TestAwaitBookingUsesLookupSchedule(t *testing.T) {
	api := &mockAPI{
		getAnswers: []getAnswer{notVisibleYet(), notVisibleYet(), notVisibleYet(), visible("bk-9")},
	}
	var slept []time.Duration
	o := &DefaultOrchestrator{
		API:          api,
		Logger:       zap.NewNop(),
		LookupPolicy: instantPolicy(scheduling.BookingLookupPolicy, &slept),
	}

	booking, err := o.AwaitBooking(context.Background(), "bk-9")
	require.NoError(t, err)

	assert.Equal(t, "bk-9", booking.ID)
	assert.Equal(t, []time.Duration{
		1500 * time.Millisecond, 3 * time.Second, 6 * time.Second, 9 * time.Second,
	}, slept)
}

func TestAwaitBookingExhausted(t *testing.T) {
	api := &mockAPI{getAnswers: []getAnswer{notVisibleYet()}}
	o := &DefaultOrchestrator{
		API:          api,
		Logger:       zap.NewNop(),
		LookupPolicy: instantPolicy(scheduling.BookingLookupPolicy, nil),
	}

	_, err := o.AwaitBooking(context.Background(), "bk-404")

	require.Error(t, err)
	assert.True(t, bookingcore.IsNotFound(err))
	assert.Equal(t, len(scheduling.BookingLookupPolicy.Delays), api.getCalls)
}

func TestAwaitBookingCancellationIsNotNotFound(t *testing.T) {
	api := &mockAPI{getAnswers: []getAnswer{notVisibleYet()}}
	o := &DefaultOrchestrator{
		API:    api,
		Logger: zap.NewNop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.AwaitBooking(ctx, "bk-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, bookingcore.IsNotFound(err))
}
