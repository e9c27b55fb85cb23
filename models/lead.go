package models

import "time"

// Lead statuses recorded over the funnel lifecycle.
const (
	LeadStatusQuoted    = "quoted"
	LeadStatusBooked    = "booked"
	LeadStatusCheckout  = "checkout"
	LeadStatusConfirmed = "confirmed"
	LeadStatusFailed    = "failed"
)

// Lead is the business's own record of a funnel outcome, kept independently
// of the upstream booking backend.
type Lead struct {
	ID          string            `bson:"id" json:"id"`
	SessionID   string            `bson:"session_id" json:"session_id"`
	FirstName   string            `bson:"first_name" json:"first_name"`
	LastName    string            `bson:"last_name" json:"last_name"`
	Email       string            `bson:"email" json:"email"`
	Phone       string            `bson:"phone" json:"phone"`
	ServiceID   string            `bson:"service_id" json:"service_id"`
	ServiceName string            `bson:"service_name" json:"service_name"`
	Quote       CalculatedPricing `bson:"quote" json:"quote"`
	BookingID   string            `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	CheckoutID  string            `bson:"checkout_id,omitempty" json:"checkout_id,omitempty"`
	Status      string            `bson:"status" json:"status"`
	FailureKind string            `bson:"failure_kind,omitempty" json:"failure_kind,omitempty"`
	CreatedAt   time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updated_at"`
}
