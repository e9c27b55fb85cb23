package bookingcore

import (
	"context"
	"net/url"

	"moveflow/models"
)

// CreateBooking submits a booking. The created record may not be immediately
// visible to GetBooking; callers bridge that gap with a bounded retry.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.post(ctx, "/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBooking fetches a booking by id. A missing record yields NotFoundError,
// which may be transient for a just-created booking.
func (c *Client) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := c.get(ctx, "/bookings/"+url.PathEscape(id), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
