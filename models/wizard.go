package models

// Wizard step ordinals. Step 3 is skipped for relocation services.
const (
	StepService     = 1
	StepPickup      = 2
	StepDestination = 3
	StepExtras      = 4
	StepContact     = 5

	MinStep = StepService
	MaxStep = StepContact
)

// FunnelSession is the server-side wizard state for one visitor, stored as a
// JSON blob in Redis under the session id.
type FunnelSession struct {
	SessionID string            `json:"session_id"`
	Step      int               `json:"step"`
	Draft     BookingDraft      `json:"draft"`
	Errors    map[string]string `json:"errors,omitempty"`
}
