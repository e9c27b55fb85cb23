package booking

import (
	"context"
	"errors"
	"fmt"

	"moveflow/httpServices/bookingcore"
	"moveflow/models"
	"moveflow/services/scheduling"

	"go.uber.org/zap"
)

// GenerateCheckoutURL bridges the eventual consistency gap between booking
// creation and checkout: each scheduled attempt re-queries the booking and,
// the moment the record is visible, immediately tries to create the payment
// session. A failed session creation is treated as transient and retries the
// whole outer loop while attempts remain.
func (o *DefaultOrchestrator) GenerateCheckoutURL(ctx context.Context, bookingID string, req CheckoutRequest) (*models.CheckoutSession, error) {
	var (
		session *models.CheckoutSession
		visible bool
	)

	err := o.checkoutPolicy().Run(ctx, func(ctx context.Context, attempt int) (scheduling.Outcome, error) {
		if _, err := o.API.GetBooking(ctx, bookingID); err != nil {
			if bookingcore.IsNotFound(err) || bookingcore.IsTransport(err) {
				o.Logger.Debug("booking not visible yet",
					zap.String("bookingID", bookingID), zap.Int("attempt", attempt))
				return scheduling.Retriable, err
			}
			return scheduling.Terminal, NewSystemError("booking lookup failed", err)
		}
		visible = true

		created, err := o.Checkout.CreateSession(ctx, req)
		if err != nil {
			o.Logger.Warn("checkout session creation failed, will retry",
				zap.String("bookingID", bookingID), zap.Int("attempt", attempt), zap.Error(err))
			return scheduling.Retriable, fmt.Errorf("failed to create checkout session: %w", err)
		}
		session = created
		return scheduling.Success, nil
	})
	if err != nil {
		// A booking that never surfaced is a distinct outcome from a
		// checkout that kept failing against a visible booking. Terminal
		// lookup errors and caller cancellation pass through unchanged.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		var sysErr *SystemError
		if !visible && !errors.As(err, &sysErr) {
			return nil, bookingcore.NewNotFoundError(
				fmt.Sprintf("booking %s was not visible within the retry window", bookingID))
		}
		return nil, err
	}
	return session, nil
}

// AwaitBooking polls until a just-created booking is queryable, using the
// longer lookup schedule. Used when a checkout session is requested directly
// for a booking id rather than through Submit.
func (o *DefaultOrchestrator) AwaitBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking *models.Booking

	err := o.lookupPolicy().Run(ctx, func(ctx context.Context, attempt int) (scheduling.Outcome, error) {
		found, err := o.API.GetBooking(ctx, bookingID)
		if err != nil {
			if bookingcore.IsNotFound(err) || bookingcore.IsTransport(err) {
				return scheduling.Retriable, err
			}
			return scheduling.Terminal, NewSystemError("booking lookup failed", err)
		}
		booking = found
		return scheduling.Success, nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		var sysErr *SystemError
		if booking == nil && !errors.As(err, &sysErr) {
			return nil, bookingcore.NewNotFoundError(
				fmt.Sprintf("booking %s was not visible within the retry window", bookingID))
		}
		return nil, err
	}
	return booking, nil
}
