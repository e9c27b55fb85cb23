package models

import (
	"strconv"
	"strings"
)

// BuildingType at a pickup or destination address.
type BuildingType string

const (
	BuildingHouse     BuildingType = "House"
	BuildingApartment BuildingType = "Apartment"
	BuildingOffice    BuildingType = "Office"
	BuildingCondo     BuildingType = "Condo"
	BuildingOther     BuildingType = "Other"
)

// TriState is a yes/no answer that may also be unset.
type TriState string

const (
	TriYes   TriState = "yes"
	TriNo    TriState = "no"
	TriUnset TriState = ""
)

// Location is one end of the move.
type Location struct {
	Address      string       `json:"address"`
	BuildingType BuildingType `json:"building_type"`
	HasElevator  TriState     `json:"has_elevator"`
	StairsCount  int          `json:"stairs_count"`
}

// BillingAddress collected on the final wizard step.
type BillingAddress struct {
	Country    string `json:"country"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// BookingDraft is the aggregate built up across the wizard steps. It has a
// single writer (the funnel controller's field update) and is read by the
// pricing engine, the slot validator and the orchestrator.
type BookingDraft struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	ServiceCategory string `json:"service_category"`
	ServiceID       string `json:"service_id"`

	DateTime string `json:"moving_address_date_and_time"`
	Hours    int    `json:"selected_hours"`

	Pickup      Location `json:"pickup"`
	Destination Location `json:"destination"`
	RoomSize    string   `json:"room_size"`

	SpecialItems map[string]int `json:"special_items"`
	Addons       []string       `json:"addons"`
	MoverCount   int            `json:"mover_count"`

	Billing BillingAddress `json:"billing"`
	Notes   string         `json:"notes"`

	// Slot is the last successful validator result, reused at booking
	// creation. SlotFingerprint identifies the (service, start, hours,
	// location type) inputs it was computed for; results arriving for a
	// stale fingerprint are discarded.
	Slot            *ValidatedSlot `json:"slot,omitempty"`
	SlotFingerprint string         `json:"slot_fingerprint,omitempty"`
}

// RoomCount derives a numeric room count from the room-size category
// ("2 Bedroom", "Studio", ...). Categories without a leading number count
// as a single room.
func (d *BookingDraft) RoomCount() int {
	fields := strings.Fields(d.RoomSize)
	if len(fields) == 0 {
		return 1
	}
	if n, err := strconv.Atoi(fields[0]); err == nil && n > 0 {
		return n
	}
	return 1
}

// HasAddon reports whether the named add-on is selected.
func (d *BookingDraft) HasAddon(name string) bool {
	for _, a := range d.Addons {
		if a == name {
			return true
		}
	}
	return false
}
