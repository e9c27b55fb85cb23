package bookingcore

import (
	"context"
	"fmt"
	"net/url"

	"moveflow/models"
)

// CheckAvailability asks whether one exact window is bookable. A negative
// answer comes back as Bookable=false, not as an error.
func (c *Client) CheckAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResult, error) {
	var result AvailabilityResult
	if err := c.post(ctx, "/availability/check", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAvailableTimes returns the open slots for a service on a given date,
// used to offer alternatives when the requested slot is taken.
func (c *Client) ListAvailableTimes(ctx context.Context, serviceID, date string) ([]models.AlternativeSlot, error) {
	path := fmt.Sprintf("/availability?service_id=%s&date=%s",
		url.QueryEscape(serviceID), url.QueryEscape(date))

	var slots []models.AlternativeSlot
	if err := c.get(ctx, path, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
