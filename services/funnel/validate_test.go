package funnel

import (
	"testing"

	"moveflow/models"

	"github.com/stretchr/testify/assert"
)

func completeDraft() models.BookingDraft {
	return models.BookingDraft{
		FirstName:       "Dana",
		LastName:        "Whitfield",
		Email:           "dana@example.com",
		Phone:           "(416) 555-0142",
		ServiceCategory: "Residential Moving",
		ServiceID:       "svc-1",
		DateTime:        "2026-09-14T09:00",
		Hours:           3,
		MoverCount:      2,
		RoomSize:        "2 Bedroom",
		Pickup: models.Location{
			Address:      "12 Elm St, Toronto",
			BuildingType: models.BuildingHouse,
		},
		Destination: models.Location{
			Address:      "88 Oak Ave, Toronto",
			BuildingType: models.BuildingHouse,
		},
		Billing: models.BillingAddress{
			Country:    "Canada",
			Address:    "12 Elm St",
			City:       "Toronto",
			PostalCode: "M5V 2T6",
		},
	}
}

func TestValidateFormAcceptsCompleteDraft(t *testing.T) {
	draft := completeDraft()
	assert.Empty(t, ValidateForm(&draft))
}

func TestValidateFormApartmentNeedsElevatorAnswer(t *testing.T) {
	draft := completeDraft()
	draft.Pickup.BuildingType = models.BuildingApartment

	errs := ValidateForm(&draft)
	assert.Contains(t, errs, "pickup_has_elevator")

	draft.Pickup.HasElevator = models.TriYes
	assert.Empty(t, ValidateForm(&draft))
}

func TestValidateFormApartmentWithoutElevatorNeedsStairs(t *testing.T) {
	draft := completeDraft()
	draft.Destination.BuildingType = models.BuildingApartment
	draft.Destination.HasElevator = models.TriNo

	errs := ValidateForm(&draft)
	assert.Contains(t, errs, "destination_has_elevator")

	draft.Destination.StairsCount = 3
	assert.Empty(t, ValidateForm(&draft))
}

func TestValidateFormSkipsDestinationForRelocation(t *testing.T) {
	draft := completeDraft()
	draft.ServiceCategory = "Labour Only"
	draft.Destination = models.Location{}

	assert.Empty(t, ValidateForm(&draft))
}

func TestValidateFormRequiresDestinationForMoves(t *testing.T) {
	draft := completeDraft()
	draft.Destination = models.Location{}

	errs := ValidateForm(&draft)
	assert.Contains(t, errs, "destination_address")
	assert.Contains(t, errs, "destination_building_type")
}

func TestValidateFormEmail(t *testing.T) {
	draft := completeDraft()

	draft.Email = "not-an-email"
	assert.Contains(t, ValidateForm(&draft), "email")

	draft.Email = "has space@example.com"
	assert.Contains(t, ValidateForm(&draft), "email")

	draft.Email = "fine@example.co.uk"
	assert.NotContains(t, ValidateForm(&draft), "email")
}

func TestValidateFormPhoneNeedsTenDigits(t *testing.T) {
	draft := completeDraft()

	draft.Phone = "555-0142"
	assert.Contains(t, ValidateForm(&draft), "phone")

	// Formatting characters do not count, digits do.
	draft.Phone = "+1 (416) 555-0142"
	assert.NotContains(t, ValidateForm(&draft), "phone")
}

func TestValidateFormDateTime(t *testing.T) {
	draft := completeDraft()

	draft.DateTime = ""
	assert.Contains(t, ValidateForm(&draft), "moving_address_date_and_time")

	draft.DateTime = "next tuesday"
	assert.Contains(t, ValidateForm(&draft), "moving_address_date_and_time")

	for _, ok := range []string{
		"2026-09-14T09:00",
		"2026-09-14T09:00:00",
		"2026-09-14 09:00",
		"2026-09-14 09:00:00",
	} {
		draft.DateTime = ok
		assert.NotContains(t, ValidateForm(&draft), "moving_address_date_and_time", ok)
	}
}

func TestValidateFormBillingFields(t *testing.T) {
	draft := completeDraft()
	draft.Billing = models.BillingAddress{}

	errs := ValidateForm(&draft)
	assert.Contains(t, errs, "billing_country")
	assert.Contains(t, errs, "billing_address")
	assert.Contains(t, errs, "billing_city")
	assert.Contains(t, errs, "billing_postal_code")
}

func TestIsStepValidGatesPresenceOnly(t *testing.T) {
	draft := completeDraft()
	// An unparseable date still passes the step gate; only final submission
	// checks formats.
	draft.DateTime = "whenever"
	session := &models.FunnelSession{Draft: draft}

	assert.True(t, IsStepValid(session, models.StepService))
	assert.True(t, IsStepValid(session, models.StepPickup))
	assert.True(t, IsStepValid(session, models.StepDestination))
	assert.True(t, IsStepValid(session, models.StepExtras))
	assert.True(t, IsStepValid(session, models.StepContact))
}

func TestIsStepValidApartmentGate(t *testing.T) {
	draft := completeDraft()
	draft.Pickup.BuildingType = models.BuildingApartment
	session := &models.FunnelSession{Draft: draft}

	assert.False(t, IsStepValid(session, models.StepPickup))

	session.Draft.Pickup.HasElevator = models.TriNo
	assert.False(t, IsStepValid(session, models.StepPickup))

	session.Draft.Pickup.StairsCount = 1
	assert.True(t, IsStepValid(session, models.StepPickup))
}

func TestIsStepValidExtrasAlwaysPasses(t *testing.T) {
	session := &models.FunnelSession{}
	assert.True(t, IsStepValid(session, models.StepExtras))
}

func TestIsStepValidUnknownStep(t *testing.T) {
	session := &models.FunnelSession{Draft: completeDraft()}
	assert.False(t, IsStepValid(session, 0))
	assert.False(t, IsStepValid(session, 6))
}
