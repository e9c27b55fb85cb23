package bookingcore

import "moveflow/models"

// AvailabilityRequest is one availability check for a concrete window.
// Start and End are local wall-clock strings in the business timezone,
// without a UTC offset suffix.
type AvailabilityRequest struct {
	ServiceID    string `json:"service_id"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Timezone     string `json:"timezone"`
	LocationType string `json:"location_type,omitempty"`
}

// AvailabilityResult is the upstream answer. Bookable=false is a normal
// negative answer, not an error.
type AvailabilityResult struct {
	Bookable   bool   `json:"bookable"`
	ResourceID string `json:"resource_id,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
}

// CreateBookingRequest carries contact details, the validated slot and
// arbitrary custom fields.
type CreateBookingRequest struct {
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	ServiceID    string            `json:"service_id"`
	Start        string            `json:"start"`
	End          string            `json:"end"`
	Timezone     string            `json:"timezone"`
	ResourceID   string            `json:"resource_id,omitempty"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

type serviceRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Hidden bool   `json:"is_hidden"`
}

func (r serviceRow) toModel() models.Service {
	return models.Service{ID: r.ID, Name: r.Name, Hidden: r.Hidden}
}
