package funnel

import (
	"regexp"
	"time"
	"unicode"

	"moveflow/models"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dateTimeLayouts are the shapes the wizard accepts for the move start.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func dateTimeValid(value string) bool {
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func phoneDigits(phone string) int {
	count := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// locationGate is the elevator/stairs rule shared by pickup and destination:
// an Apartment needs an elevator answer, and "no" needs at least one flight
// of stairs on record. Every other building type passes unconditionally.
func locationGate(loc models.Location) bool {
	if loc.BuildingType != models.BuildingApartment {
		return true
	}
	switch loc.HasElevator {
	case models.TriYes:
		return true
	case models.TriNo:
		return loc.StairsCount >= 1
	default:
		return false
	}
}

// IsStepValid gates the Next/Submit button for one step. It is deliberately
// laxer than ValidateForm: it checks presence and the elevator/stairs rule
// but not formats. Availability confirmation is not required on step 1; the
// business reviews requested times manually.
func IsStepValid(session *models.FunnelSession, step int) bool {
	draft := &session.Draft
	switch step {
	case models.StepService:
		return draft.ServiceCategory != "" && draft.ServiceID != "" && draft.DateTime != ""
	case models.StepPickup:
		return draft.Pickup.Address != "" &&
			draft.Pickup.BuildingType != "" &&
			locationGate(draft.Pickup) &&
			draft.RoomSize != ""
	case models.StepDestination:
		return draft.Destination.Address != "" &&
			draft.Destination.BuildingType != "" &&
			locationGate(draft.Destination)
	case models.StepExtras:
		return true
	case models.StepContact:
		return draft.FirstName != "" && draft.LastName != "" &&
			draft.Email != "" && draft.Phone != "" &&
			draft.DateTime != "" &&
			draft.Billing.Country != "" && draft.Billing.Address != "" &&
			draft.Billing.City != "" && draft.Billing.PostalCode != ""
	default:
		return false
	}
}

// ValidateForm re-checks the whole draft at submission time and returns a
// field-to-message map. An empty map means the draft is submittable. These
// errors never block navigation, only final submission.
func ValidateForm(draft *models.BookingDraft) map[string]string {
	errs := make(map[string]string)
	relocation := IsRelocationService(draft.ServiceCategory)

	if draft.ServiceCategory == "" {
		errs["service_category"] = "Please select a service"
	}
	if draft.ServiceID == "" {
		errs["service_id"] = "Please select a service"
	}
	if draft.DateTime == "" {
		errs["moving_address_date_and_time"] = "Please pick a date and time"
	} else if !dateTimeValid(draft.DateTime) {
		errs["moving_address_date_and_time"] = "Please pick a valid date and time"
	}

	if draft.Pickup.Address == "" {
		errs["pickup_address"] = "Pickup address is required"
	}
	if draft.Pickup.BuildingType == "" {
		errs["pickup_building_type"] = "Please select a building type"
	} else if !locationGate(draft.Pickup) {
		errs["pickup_has_elevator"] = "Please answer the elevator question and stairs count"
	}
	if draft.RoomSize == "" {
		errs["room_size"] = "Please select the size of your home"
	}

	if !relocation {
		if draft.Destination.Address == "" {
			errs["destination_address"] = "Destination address is required"
		}
		if draft.Destination.BuildingType == "" {
			errs["destination_building_type"] = "Please select a building type"
		} else if !locationGate(draft.Destination) {
			errs["destination_has_elevator"] = "Please answer the elevator question and stairs count"
		}
	}

	if draft.FirstName == "" {
		errs["first_name"] = "First name is required"
	}
	if draft.LastName == "" {
		errs["last_name"] = "Last name is required"
	}
	if draft.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailRx.MatchString(draft.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if draft.Phone == "" {
		errs["phone"] = "Phone number is required"
	} else if phoneDigits(draft.Phone) < 10 {
		errs["phone"] = "Please enter a valid phone number"
	}

	if draft.Billing.Country == "" {
		errs["billing_country"] = "Country is required"
	}
	if draft.Billing.Address == "" {
		errs["billing_address"] = "Billing address is required"
	}
	if draft.Billing.City == "" {
		errs["billing_city"] = "City is required"
	}
	if draft.Billing.PostalCode == "" {
		errs["billing_postal_code"] = "Postal code is required"
	}

	return errs
}
