package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"moveflow/httpServices/bookingcore"
	"moveflow/models"
	"moveflow/services/funnel"
	"moveflow/services/pricing"
	"moveflow/services/scheduling"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const followupDelay = 15 * time.Minute

// Submit runs the terminal funnel sequence: full-form validation, quote,
// upstream booking creation, consistency-bridging checkout generation. Every
// path ends in exactly one terminal outcome; no stage leaves the visitor's
// payment state ambiguous.
func (o *DefaultOrchestrator) Submit(ctx context.Context, sessionID string) (*models.SubmissionResult, error) {
	session, err := o.Funnel.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft := &session.Draft

	if fieldErrs := funnel.ValidateForm(draft); len(fieldErrs) > 0 {
		return &models.SubmissionResult{FieldErrors: fieldErrs}, nil
	}

	rates, err := o.Rates.Snapshot(ctx)
	if err != nil {
		o.Logger.Error("rate snapshot failed at submission", zap.Error(err))
		return &models.SubmissionResult{
			Error: "We could not prepare your quote. Please try again in a moment.",
		}, nil
	}
	quote := pricing.Calculate(draft, rates)

	// A cached slot confirmation is only trusted for the exact inputs it was
	// computed for; anything else gets a fresh check.
	slot := draft.Slot
	if slot != nil {
		current := scheduling.Fingerprint(draft.ServiceID, draft.DateTime, draft.Hours,
			string(draft.Pickup.BuildingType))
		if draft.SlotFingerprint != current {
			slot = nil
		}
	}
	if slot == nil {
		check := o.Validator.CheckSlot(ctx, draft.ServiceID, draft.DateTime, draft.Hours,
			string(draft.Pickup.BuildingType))
		if check.Slot != nil {
			slot = check.Slot
		}
	}
	if slot != nil && !slot.Bookable {
		o.recordLead(ctx, session, quote, "", "", models.LeadStatusFailed, "unavailable")
		return o.unavailableResult(ctx, draft), nil
	}

	req, err := o.buildBookingRequest(draft, quote, slot)
	if err != nil {
		o.Logger.Error("could not assemble booking request", zap.Error(err))
		return &models.SubmissionResult{
			Error: "We could not process your requested date and time.",
		}, nil
	}

	created, err := o.API.CreateBooking(ctx, *req)
	if err != nil {
		if isUnavailableUpstream(err) {
			o.recordLead(ctx, session, quote, "", "", models.LeadStatusFailed, "unavailable")
			return o.unavailableResult(ctx, draft), nil
		}
		o.Logger.Error("booking creation failed", zap.Error(err))
		o.recordLead(ctx, session, quote, "", "", models.LeadStatusFailed, "create")
		return &models.SubmissionResult{
			Error: "We could not complete your booking. Please try again.",
		}, nil
	}

	checkout, err := o.GenerateCheckoutURL(ctx, created.ID, CheckoutRequest{
		BookingID:   created.ID,
		Amount:      quote.FinalTotal,
		Email:       draft.Email,
		Description: fmt.Sprintf("%s - %d movers, %d hours", draft.ServiceCategory, draft.MoverCount, draft.Hours),
	})
	if err != nil {
		kind := "checkout"
		message := "Your booking was created but we could not start the payment. Our team will follow up."
		if bookingcore.IsNotFound(err) {
			kind = "not_found"
			message = "We could not confirm your booking in time. Our team will follow up."
		}
		o.Logger.Error("checkout generation failed",
			zap.String("bookingID", created.ID), zap.Error(err))
		o.recordLead(ctx, session, quote, created.ID, "", models.LeadStatusFailed, kind)
		return &models.SubmissionResult{BookingID: created.ID, Error: message}, nil
	}

	leadID := o.recordLead(ctx, session, quote, created.ID, checkout.ID, models.LeadStatusCheckout, "")
	if o.Followup != nil {
		if err := o.Followup.EnqueueBookingFollowup(created.ID, leadID, followupDelay); err != nil {
			o.Logger.Warn("failed to enqueue booking follow-up",
				zap.String("bookingID", created.ID), zap.Error(err))
		}
	}

	if err := o.Funnel.EndSession(ctx, sessionID); err != nil {
		o.Logger.Warn("failed to end funnel session", zap.String("sessionID", sessionID), zap.Error(err))
	}

	return &models.SubmissionResult{
		Success:     true,
		BookingID:   created.ID,
		CheckoutID:  checkout.ID,
		CheckoutURL: checkout.URL,
	}, nil
}

// buildBookingRequest assembles the upstream payload from the draft, reusing
// the validated slot when one exists and falling back to the computed window
// otherwise, so an unreachable availability endpoint does not block booking.
func (o *DefaultOrchestrator) buildBookingRequest(draft *models.BookingDraft, quote models.CalculatedPricing, slot *models.ValidatedSlot) (*bookingcore.CreateBookingRequest, error) {
	var start, end, timezone, resource string
	if slot != nil {
		start, end, timezone, resource = slot.Start, slot.End, slot.Timezone, slot.ResourceID
	} else {
		var err error
		start, end, err = o.Validator.Window(draft.DateTime, draft.Hours)
		if err != nil {
			return nil, err
		}
		timezone = o.Validator.Timezone
	}

	return &bookingcore.CreateBookingRequest{
		FirstName:    draft.FirstName,
		LastName:     draft.LastName,
		Email:        draft.Email,
		Phone:        draft.Phone,
		ServiceID:    draft.ServiceID,
		Start:        start,
		End:          end,
		Timezone:     timezone,
		ResourceID:   resource,
		CustomFields: customFields(draft, quote),
	}, nil
}

func customFields(draft *models.BookingDraft, quote models.CalculatedPricing) map[string]string {
	fields := map[string]string{
		"mover_count":    strconv.Itoa(draft.MoverCount),
		"selected_hours": strconv.Itoa(draft.Hours),
		"room_size":      draft.RoomSize,
		"pickup_address": draft.Pickup.Address,
		"quoted_total":   fmt.Sprintf("%.2f", quote.FinalTotal),
	}
	if draft.Destination.Address != "" {
		fields["destination_address"] = draft.Destination.Address
	}
	if len(draft.Addons) > 0 {
		fields["addons"] = strings.Join(draft.Addons, ", ")
	}
	if len(draft.SpecialItems) > 0 {
		if data, err := json.Marshal(draft.SpecialItems); err == nil {
			fields["special_items"] = string(data)
		}
	}
	if draft.Notes != "" {
		fields["notes"] = draft.Notes
	}
	return fields
}

// unavailableResult offers alternative slots for the requested date instead
// of a generic failure.
func (o *DefaultOrchestrator) unavailableResult(ctx context.Context, draft *models.BookingDraft) *models.SubmissionResult {
	result := &models.SubmissionResult{
		Error: "The requested time is no longer available.",
	}
	alternatives, err := o.API.ListAvailableTimes(ctx, draft.ServiceID, datePart(draft.DateTime))
	if err != nil {
		o.Logger.Warn("could not list alternative slots", zap.Error(err))
		return result
	}
	result.Alternatives = alternatives
	return result
}

func datePart(dateTime string) string {
	for _, sep := range []string{"T", " "} {
		if idx := strings.Index(dateTime, sep); idx > 0 {
			return dateTime[:idx]
		}
	}
	return dateTime
}

// isUnavailableUpstream matches both our own classification and the backend's
// rejection wording for a taken slot.
func isUnavailableUpstream(err error) bool {
	if IsUnavailable(err) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not available") || strings.Contains(msg, "unavailable")
}

// recordLead writes the funnel outcome to the leads repository. Best effort;
// a storage failure never changes the visitor-facing outcome.
func (o *DefaultOrchestrator) recordLead(ctx context.Context, session *models.FunnelSession, quote models.CalculatedPricing, bookingID, checkoutID, status, failureKind string) string {
	if o.Leads == nil {
		return ""
	}
	now := time.Now()
	lead := &models.Lead{
		ID:          uuid.New().String(),
		SessionID:   session.SessionID,
		FirstName:   session.Draft.FirstName,
		LastName:    session.Draft.LastName,
		Email:       session.Draft.Email,
		Phone:       session.Draft.Phone,
		ServiceID:   session.Draft.ServiceID,
		ServiceName: session.Draft.ServiceCategory,
		Quote:       quote,
		BookingID:   bookingID,
		CheckoutID:  checkoutID,
		Status:      status,
		FailureKind: failureKind,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := o.Leads.Create(ctx, lead); err != nil {
		o.Logger.Warn("failed to record lead", zap.String("sessionID", session.SessionID), zap.Error(err))
		return ""
	}
	return lead.ID
}
