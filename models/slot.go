package models

import "encoding/json"

// ValidatedSlot is the outcome of an availability check for one concrete
// (service, start, end) window. ResourceID and Timezone come back from the
// scheduling backend and are reused verbatim at booking creation.
type ValidatedSlot struct {
	Bookable   bool            `json:"bookable"`
	ServiceID  string          `json:"service_id"`
	Start      string          `json:"start"`
	End        string          `json:"end"`
	ResourceID string          `json:"resource_id,omitempty"`
	Timezone   string          `json:"timezone,omitempty"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

// AlternativeSlot is one entry of a plain availability listing, offered when
// the requested slot turned out not to be bookable.
type AlternativeSlot struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	ResourceID string `json:"resource_id,omitempty"`
}
