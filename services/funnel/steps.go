package funnel

import (
	"strings"

	"moveflow/models"
)

// Direction of a wizard transition.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// IsRelocationService reports whether the service category skips the
// destination step. Anything that is not a residential or commercial move
// (labour-only, furniture, packing) has no distinct destination address.
func IsRelocationService(serviceName string) bool {
	label := strings.ToLower(serviceName)
	return !strings.Contains(label, "residential") && !strings.Contains(label, "commercial")
}

// advance is the single skip-aware transition function used by both
// directions, so the forward and backward handlers cannot drift apart.
// Results clamp to [MinStep, MaxStep].
func advance(current int, dir Direction, relocation bool) int {
	next := current
	switch dir {
	case Forward:
		next = current + 1
		if relocation && next == models.StepDestination {
			next = models.StepExtras
		}
	case Backward:
		next = current - 1
		if relocation && next == models.StepDestination {
			next = models.StepPickup
		}
	}

	if next < models.MinStep {
		return models.MinStep
	}
	if next > models.MaxStep {
		return models.MaxStep
	}
	return next
}
