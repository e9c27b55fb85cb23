package scheduling

import (
	"context"
	"errors"
	"testing"

	"moveflow/httpServices/bookingcore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAvailability answers availability checks from canned data.
type stubAvailability struct {
	answer  *bookingcore.AvailabilityResult
	err     error
	lastReq bookingcore.AvailabilityRequest
}

func (s *stubAvailability) CheckAvailability(ctx context.Context, req bookingcore.AvailabilityRequest) (*bookingcore.AvailabilityResult, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.answer, nil
}

func newTestValidator(api AvailabilityAPI) *Validator {
	return &Validator{API: api, Timezone: "America/Toronto", Logger: zap.NewNop()}
}

func TestWindowComputesEndFromHours(t *testing.T) {
	v := newTestValidator(nil)

	start, end, err := v.Window("2026-09-14T09:00", 3)
	require.NoError(t, err)

	assert.Equal(t, "2026-09-14 09:00:00", start)
	assert.Equal(t, "2026-09-14 12:00:00", end)
}

func TestWindowEnforcesMinimumDuration(t *testing.T) {
	v := newTestValidator(nil)

	_, end, err := v.Window("2026-09-14 09:00", 0)
	require.NoError(t, err)

	assert.Equal(t, "2026-09-14 11:00:00", end)
}

func TestWindowAcceptsAllInputLayouts(t *testing.T) {
	v := newTestValidator(nil)
	for _, in := range []string{
		"2026-09-14T09:00:00",
		"2026-09-14T09:00",
		"2026-09-14 09:00:00",
		"2026-09-14 09:00",
	} {
		start, _, err := v.Window(in, 2)
		require.NoError(t, err, in)
		assert.Equal(t, "2026-09-14 09:00:00", start, in)
	}
}

func TestWindowRejectsGarbage(t *testing.T) {
	v := newTestValidator(nil)
	_, _, err := v.Window("next tuesday", 2)
	assert.Error(t, err)
}

func TestCheckSlotBookable(t *testing.T) {
	api := &stubAvailability{
		answer: &bookingcore.AvailabilityResult{Bookable: true, ResourceID: "crew-7"},
	}
	v := newTestValidator(api)

	result := v.CheckSlot(context.Background(), "svc-1", "2026-09-14T09:00", 3, "House")

	assert.Equal(t, StatusBookable, result.Status)
	require.NotNil(t, result.Slot)
	assert.True(t, result.Slot.Bookable)
	assert.Equal(t, "crew-7", result.Slot.ResourceID)
	assert.Equal(t, "2026-09-14 09:00:00", result.Slot.Start)
	assert.Equal(t, "2026-09-14 12:00:00", result.Slot.End)
	assert.Equal(t, "America/Toronto", result.Slot.Timezone)

	// The request carried local wall-clock bounds and the business timezone.
	assert.Equal(t, "America/Toronto", api.lastReq.Timezone)
	assert.Equal(t, "House", api.lastReq.LocationType)
}

func TestCheckSlotUnavailable(t *testing.T) {
	api := &stubAvailability{answer: &bookingcore.AvailabilityResult{Bookable: false}}
	v := newTestValidator(api)

	result := v.CheckSlot(context.Background(), "svc-1", "2026-09-14T09:00", 3, "House")

	assert.Equal(t, StatusUnavailable, result.Status)
	require.NotNil(t, result.Slot)
	assert.False(t, result.Slot.Bookable)
}

func TestCheckSlotTransportFailureIsUnknown(t *testing.T) {
	api := &stubAvailability{err: errors.New("connection refused")}
	v := newTestValidator(api)

	result := v.CheckSlot(context.Background(), "svc-1", "2026-09-14T09:00", 3, "House")

	assert.Equal(t, StatusUnknown, result.Status)
	assert.Nil(t, result.Slot)
	assert.NotEmpty(t, result.Err)
}

func TestCheckSlotBadStartIsUnknown(t *testing.T) {
	v := newTestValidator(&stubAvailability{})

	result := v.CheckSlot(context.Background(), "svc-1", "someday", 3, "House")

	assert.Equal(t, StatusUnknown, result.Status)
	assert.NotEmpty(t, result.Err)
}

func TestFingerprintCoversAllInputs(t *testing.T) {
	base := Fingerprint("svc-1", "2026-09-14T09:00", 3, "House")

	assert.Equal(t, base, Fingerprint("svc-1", "2026-09-14T09:00", 3, "House"))
	assert.NotEqual(t, base, Fingerprint("svc-2", "2026-09-14T09:00", 3, "House"))
	assert.NotEqual(t, base, Fingerprint("svc-1", "2026-09-15T09:00", 3, "House"))
	assert.NotEqual(t, base, Fingerprint("svc-1", "2026-09-14T09:00", 4, "House"))
	assert.NotEqual(t, base, Fingerprint("svc-1", "2026-09-14T09:00", 3, "Apartment"))
}

func TestCheckSlotFingerprintUsesRawInputs(t *testing.T) {
	api := &stubAvailability{answer: &bookingcore.AvailabilityResult{Bookable: true}}
	v := newTestValidator(api)

	result := v.CheckSlot(context.Background(), "svc-1", "2026-09-14T09:00", 3, "House")

	assert.Equal(t, Fingerprint("svc-1", "2026-09-14T09:00", 3, "House"), result.Fingerprint)
}
