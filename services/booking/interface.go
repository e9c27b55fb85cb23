package booking

import (
	"context"
	"time"

	leadsRepo "moveflow/database/repository/leads"
	"moveflow/httpServices/bookingcore"
	"moveflow/models"
	"moveflow/services/funnel"
	"moveflow/services/pricing"
	"moveflow/services/scheduling"

	"go.uber.org/zap"
)

// BookingAPI is the slice of the upstream backend the orchestrator needs.
type BookingAPI interface {
	CreateBooking(ctx context.Context, req bookingcore.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListAvailableTimes(ctx context.Context, serviceID, date string) ([]models.AlternativeSlot, error)
}

// CheckoutRequest asks the payment provider for a redirect session.
type CheckoutRequest struct {
	BookingID   string
	Amount      float64
	Currency    string
	Email       string
	Description string
}

// CheckoutProvider creates payment redirect sessions.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (*models.CheckoutSession, error)
}

// FollowupScheduler queues the post-submission booking re-check.
type FollowupScheduler interface {
	EnqueueBookingFollowup(bookingID, leadID string, delay time.Duration) error
}

// Orchestrator drives the terminal stage of the funnel: validate, quote,
// create the booking upstream, bridge eventual consistency, and hand the
// visitor a payment redirect.
type Orchestrator interface {
	Submit(ctx context.Context, sessionID string) (*models.SubmissionResult, error)
	GenerateCheckoutURL(ctx context.Context, bookingID string, req CheckoutRequest) (*models.CheckoutSession, error)
	AwaitBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}

// DefaultOrchestrator implements Orchestrator.
type DefaultOrchestrator struct {
	Funnel    *funnel.Controller
	Rates     *pricing.Fetcher
	Validator *scheduling.Validator
	API       BookingAPI
	Checkout  CheckoutProvider
	Leads     leadsRepo.Repository
	Followup  FollowupScheduler
	Logger    *zap.Logger

	// Retry schedules, overridable in tests. Zero values fall back to the
	// documented fixed schedules.
	CheckoutPolicy scheduling.RetryPolicy
	LookupPolicy   scheduling.RetryPolicy
}

func (o *DefaultOrchestrator) checkoutPolicy() scheduling.RetryPolicy {
	if len(o.CheckoutPolicy.Delays) == 0 {
		return scheduling.CheckoutURLPolicy
	}
	return o.CheckoutPolicy
}

func (o *DefaultOrchestrator) lookupPolicy() scheduling.RetryPolicy {
	if len(o.LookupPolicy.Delays) == 0 {
		return scheduling.BookingLookupPolicy
	}
	return o.LookupPolicy
}
