package funnel

import (
	"testing"

	"moveflow/models"

	"github.com/stretchr/testify/assert"
)

func TestIsRelocationService(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Residential Moving", false},
		{"Commercial Moving", false},
		{"COMMERCIAL RELOCATION", false},
		{"Labour Only", true},
		{"Furniture Delivery", true},
		{"Packing Services", true},
		{"", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsRelocationService(tc.name), tc.name)
	}
}

func TestAdvanceForwardSkipsDestinationForRelocation(t *testing.T) {
	got := advance(models.StepPickup, Forward, true)
	assert.Equal(t, models.StepExtras, got)
}

func TestAdvanceForwardKeepsDestinationForMoves(t *testing.T) {
	got := advance(models.StepPickup, Forward, false)
	assert.Equal(t, models.StepDestination, got)
}

func TestAdvanceBackwardSkipIsSymmetric(t *testing.T) {
	// Going forward then backward over the skip lands back where it started.
	forward := advance(models.StepPickup, Forward, true)
	assert.Equal(t, models.StepExtras, forward)
	back := advance(forward, Backward, true)
	assert.Equal(t, models.StepPickup, back)
}

func TestAdvanceClampsAtBounds(t *testing.T) {
	assert.Equal(t, models.MaxStep, advance(models.MaxStep, Forward, false))
	assert.Equal(t, models.MinStep, advance(models.MinStep, Backward, false))
	assert.Equal(t, models.MaxStep, advance(models.MaxStep, Forward, true))
	assert.Equal(t, models.MinStep, advance(models.MinStep, Backward, true))
}

func TestAdvanceWalksEveryStepForOrdinaryMoves(t *testing.T) {
	step := models.MinStep
	var visited []int
	for step < models.MaxStep {
		visited = append(visited, step)
		step = advance(step, Forward, false)
	}
	visited = append(visited, step)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, visited)
}

func TestAdvanceWalkSkipsStepThreeForRelocation(t *testing.T) {
	step := models.MinStep
	var visited []int
	for step < models.MaxStep {
		visited = append(visited, step)
		step = advance(step, Forward, true)
	}
	visited = append(visited, step)
	assert.Equal(t, []int{1, 2, 4, 5}, visited)
}
