package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"moveflow/httpServices/bookingcore"
	"moveflow/models"
	"moveflow/services/pricing"

	"go.uber.org/zap"
)

// slotTimeLayout is the wall-clock representation the scheduling backend
// expects: local time in the business timezone, no UTC offset suffix.
const slotTimeLayout = "2006-01-02 15:04:05"

// inputLayouts are the date-time shapes accepted from the wizard.
var inputLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Status is the tri-state answer of a slot check. Transport failures become
// Unknown rather than errors so the wizard can still let the visitor proceed.
type Status string

const (
	StatusBookable    Status = "bookable"
	StatusUnavailable Status = "unavailable"
	StatusUnknown     Status = "unknown"
)

// CheckResult carries the tri-state status, the validated slot when the
// backend answered, and an error string when it did not.
type CheckResult struct {
	Status      Status                `json:"status"`
	Fingerprint string                `json:"fingerprint"`
	Slot        *models.ValidatedSlot `json:"slot,omitempty"`
	Err         string                `json:"error,omitempty"`
}

// AvailabilityAPI is the slice of the booking backend the validator needs.
type AvailabilityAPI interface {
	CheckAvailability(ctx context.Context, req bookingcore.AvailabilityRequest) (*bookingcore.AvailabilityResult, error)
}

// Validator classifies requested slots against the scheduling backend.
type Validator struct {
	API      AvailabilityAPI
	Timezone string
	Logger   *zap.Logger
}

// Fingerprint identifies one set of check inputs. A result is only applied to
// the draft when its fingerprint still matches the draft's latest inputs;
// superseded results are discarded, never merged.
func Fingerprint(serviceID, localStart string, hours int, locationType string) string {
	return fmt.Sprintf("%s|%s|%d|%s", serviceID, localStart, hours, locationType)
}

// Window converts the requested local start into the business timezone and
// computes the end as start plus max(MinHours, hours). Both bounds come back
// in the backend's wall-clock layout.
func (v *Validator) Window(localStart string, hours int) (string, string, error) {
	start, err := v.parseLocal(localStart)
	if err != nil {
		return "", "", err
	}
	if hours < pricing.MinHours {
		hours = pricing.MinHours
	}
	end := start.Add(time.Duration(hours) * time.Hour)
	return start.Format(slotTimeLayout), end.Format(slotTimeLayout), nil
}

// CheckSlot computes the requested window and asks the backend whether that
// exact window is bookable.
func (v *Validator) CheckSlot(ctx context.Context, serviceID, localStart string, hours int, locationType string) CheckResult {
	result := CheckResult{
		Status:      StatusUnknown,
		Fingerprint: Fingerprint(serviceID, localStart, hours, locationType),
	}

	startStr, endStr, err := v.Window(localStart, hours)
	if err != nil {
		result.Err = fmt.Sprintf("invalid start time: %v", err)
		return result
	}

	req := bookingcore.AvailabilityRequest{
		ServiceID:    serviceID,
		Start:        startStr,
		End:          endStr,
		Timezone:     v.Timezone,
		LocationType: locationType,
	}

	answer, err := v.API.CheckAvailability(ctx, req)
	if err != nil {
		v.Logger.Warn("slot availability check failed",
			zap.String("serviceID", serviceID), zap.Error(err))
		result.Err = err.Error()
		return result
	}

	timezone := answer.Timezone
	if timezone == "" {
		timezone = v.Timezone
	}
	raw, _ := json.Marshal(answer)

	result.Slot = &models.ValidatedSlot{
		Bookable:   answer.Bookable,
		ServiceID:  serviceID,
		Start:      req.Start,
		End:        req.End,
		ResourceID: answer.ResourceID,
		Timezone:   timezone,
		Raw:        raw,
	}
	if answer.Bookable {
		result.Status = StatusBookable
	} else {
		result.Status = StatusUnavailable
	}
	return result
}

func (v *Validator) parseLocal(value string) (time.Time, error) {
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad business timezone %q: %w", v.Timezone, err)
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date-time %q", value)
}
