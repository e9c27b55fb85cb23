package models

import "time"

// Booking mirrors the upstream booking record for the fields this service
// cares about.
type Booking struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	ServiceID  string    `json:"service_id"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Timezone   string    `json:"timezone"`
	ResourceID string    `json:"resource_id,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// CheckoutSession is a payment redirect created for a booking.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SubmissionResult is the single terminal outcome of submitting the funnel.
// Exactly one of the branches is populated: a redirect, a field-error map,
// a list of alternative slots, or a user-facing error.
type SubmissionResult struct {
	Success      bool              `json:"success"`
	BookingID    string            `json:"booking_id,omitempty"`
	CheckoutID   string            `json:"checkout_id,omitempty"`
	CheckoutURL  string            `json:"checkout_url,omitempty"`
	FieldErrors  map[string]string `json:"field_errors,omitempty"`
	Alternatives []AlternativeSlot `json:"alternatives,omitempty"`
	Error        string            `json:"error,omitempty"`
}
