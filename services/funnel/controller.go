package funnel

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"moveflow/models"
	"moveflow/services/pricing"
	"moveflow/services/scheduling"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Controller owns the wizard: current step, the draft, per-field errors and
// the transition rules. It is the draft's only writer; everything else reads.
type Controller struct {
	Store  SessionStore
	Logger *zap.Logger
}

// StartSession creates a fresh wizard session with the documented defaults.
func (c *Controller) StartSession(ctx context.Context) (*models.FunnelSession, error) {
	session := &models.FunnelSession{
		SessionID: uuid.New().String(),
		Step:      models.StepService,
		Draft: models.BookingDraft{
			Hours:        pricing.MinHours,
			MoverCount:   pricing.DefaultMoverCount,
			SpecialItems: make(map[string]int),
		},
		Errors: make(map[string]string),
	}
	if err := c.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	c.Logger.Info("funnel session started", zap.String("sessionID", session.SessionID))
	return session, nil
}

// GetSession loads a session by id.
func (c *Controller) GetSession(ctx context.Context, sessionID string) (*models.FunnelSession, error) {
	return c.Store.Load(ctx, sessionID)
}

// UpdateField mutates a single draft field, clears any recorded error for it
// and persists the session. Changing any slot-check input invalidates the
// cached ValidatedSlot so a stale confirmation can never be reused.
func (c *Controller) UpdateField(ctx context.Context, sessionID, field, value string) (*models.FunnelSession, error) {
	session, err := c.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := applyField(&session.Draft, field, value); err != nil {
		return nil, err
	}
	delete(session.Errors, field)

	if isSlotInput(field) {
		session.Draft.Slot = nil
		session.Draft.SlotFingerprint = ""
	}

	if err := c.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// slot-check inputs; touching one supersedes any in-flight or cached check.
// The set mirrors the fingerprint: service, start, hours, pickup building type.
func isSlotInput(field string) bool {
	switch field {
	case "service_id", "service_category", "moving_address_date_and_time",
		"selected_hours", "pickup_building_type":
		return true
	}
	return false
}

func applyField(draft *models.BookingDraft, field, value string) error {
	switch field {
	case "first_name":
		draft.FirstName = value
	case "last_name":
		draft.LastName = value
	case "email":
		draft.Email = value
	case "phone":
		draft.Phone = value
	case "service_category":
		draft.ServiceCategory = value
	case "service_id":
		draft.ServiceID = value
	case "moving_address_date_and_time":
		draft.DateTime = value
	case "selected_hours":
		hours, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("selected_hours must be a number: %w", err)
		}
		if hours < pricing.MinHours || hours > pricing.MaxHours {
			return fmt.Errorf("selected_hours must be between %d and %d", pricing.MinHours, pricing.MaxHours)
		}
		draft.Hours = hours
	case "mover_count":
		count, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("mover_count must be a number: %w", err)
		}
		draft.MoverCount = count
	case "room_size":
		draft.RoomSize = value
	case "notes":
		draft.Notes = value
	case "pickup_address":
		draft.Pickup.Address = value
	case "pickup_building_type":
		draft.Pickup.BuildingType = models.BuildingType(value)
	case "pickup_has_elevator":
		draft.Pickup.HasElevator = models.TriState(value)
	case "pickup_stairs_count":
		count, err := strconv.Atoi(value)
		if err != nil || count < 0 {
			return fmt.Errorf("pickup_stairs_count must be a non-negative number")
		}
		draft.Pickup.StairsCount = count
	case "destination_address":
		draft.Destination.Address = value
	case "destination_building_type":
		draft.Destination.BuildingType = models.BuildingType(value)
	case "destination_has_elevator":
		draft.Destination.HasElevator = models.TriState(value)
	case "destination_stairs_count":
		count, err := strconv.Atoi(value)
		if err != nil || count < 0 {
			return fmt.Errorf("destination_stairs_count must be a non-negative number")
		}
		draft.Destination.StairsCount = count
	case "special_items":
		items := make(map[string]int)
		if err := json.Unmarshal([]byte(value), &items); err != nil {
			return fmt.Errorf("special_items must be a name to quantity map: %w", err)
		}
		for name, qty := range items {
			if qty < 0 {
				return fmt.Errorf("quantity for %q must not be negative", name)
			}
		}
		draft.SpecialItems = items
	case "addons":
		var addons []string
		if err := json.Unmarshal([]byte(value), &addons); err != nil {
			return fmt.Errorf("addons must be a list of names: %w", err)
		}
		draft.Addons = addons
	case "billing_country":
		draft.Billing.Country = value
	case "billing_address":
		draft.Billing.Address = value
	case "billing_city":
		draft.Billing.City = value
	case "billing_postal_code":
		draft.Billing.PostalCode = value
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

// NextStep advances the wizard, skipping the destination step for
// relocation services.
func (c *Controller) NextStep(ctx context.Context, sessionID string) (*models.FunnelSession, error) {
	return c.move(ctx, sessionID, Forward)
}

// PrevStep walks the wizard back with the same skip rule.
func (c *Controller) PrevStep(ctx context.Context, sessionID string) (*models.FunnelSession, error) {
	return c.move(ctx, sessionID, Backward)
}

func (c *Controller) move(ctx context.Context, sessionID string, dir Direction) (*models.FunnelSession, error) {
	session, err := c.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	relocation := IsRelocationService(session.Draft.ServiceCategory)
	session.Step = advance(session.Step, dir, relocation)
	if err := c.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GotoStep jumps straight to a step, bypassing normal gating. Used by the
// "edit" and "pick another slot" flows.
func (c *Controller) GotoStep(ctx context.Context, sessionID string, step int) (*models.FunnelSession, error) {
	if step < models.MinStep || step > models.MaxStep {
		return nil, fmt.Errorf("step %d is out of range", step)
	}
	session, err := c.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Step = step
	if err := c.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// HandleStepValidation records blocking error messages for one step's fields
// and returns whether the step passed. Unlike IsStepValid it writes into the
// session's error map.
func (c *Controller) HandleStepValidation(ctx context.Context, sessionID string, step int) (bool, *models.FunnelSession, error) {
	session, err := c.Store.Load(ctx, sessionID)
	if err != nil {
		return false, nil, err
	}

	all := ValidateForm(&session.Draft)
	if session.Errors == nil {
		session.Errors = make(map[string]string)
	}

	valid := true
	for _, field := range stepFields[step] {
		if msg, ok := all[field]; ok {
			session.Errors[field] = msg
			valid = false
		} else {
			delete(session.Errors, field)
		}
	}

	if err := c.Store.Save(ctx, session); err != nil {
		return false, nil, err
	}
	return valid, session, nil
}

// stepFields maps a wizard step to the draft fields it owns.
var stepFields = map[int][]string{
	models.StepService: {"service_category", "service_id", "moving_address_date_and_time"},
	models.StepPickup: {
		"pickup_address", "pickup_building_type", "pickup_has_elevator",
		"pickup_stairs_count", "room_size",
	},
	models.StepDestination: {
		"destination_address", "destination_building_type",
		"destination_has_elevator", "destination_stairs_count",
	},
	models.StepExtras: {},
	models.StepContact: {
		"first_name", "last_name", "email", "phone",
		"billing_country", "billing_address", "billing_city", "billing_postal_code",
	},
}

// ApplySlotCheck stores a validator result onto the draft, but only when its
// fingerprint still matches the draft's current inputs. A result computed for
// superseded inputs is dropped.
func (c *Controller) ApplySlotCheck(ctx context.Context, sessionID string, result scheduling.CheckResult) (*models.FunnelSession, error) {
	session, err := c.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	current := scheduling.Fingerprint(
		session.Draft.ServiceID,
		session.Draft.DateTime,
		session.Draft.Hours,
		string(session.Draft.Pickup.BuildingType),
	)
	if result.Fingerprint != current {
		c.Logger.Debug("discarding superseded slot check",
			zap.String("sessionID", sessionID),
			zap.String("got", result.Fingerprint),
			zap.String("want", current))
		return session, nil
	}

	if result.Slot != nil {
		session.Draft.Slot = result.Slot
		session.Draft.SlotFingerprint = result.Fingerprint
	}
	if err := c.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// EndSession discards the wizard state, e.g. after a successful submission.
func (c *Controller) EndSession(ctx context.Context, sessionID string) error {
	return c.Store.Delete(ctx, sessionID)
}
