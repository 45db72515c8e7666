package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeciationManager_NextSpeciesId_neverRepeats(t *testing.T) {
	m := NewSpeciationManager(3.0, 8)
	ids := map[int]bool{}
	for i := 0; i < 5; i++ {
		id := m.NextSpeciesId()
		assert.False(t, ids[id], "species id %d reused", id)
		ids[id] = true
	}
}

func TestAdjustThreshold_increasesWhenTooManySpecies(t *testing.T) {
	m := NewSpeciationManager(3.0, 8)
	m.AdjustThreshold(20) // > 2*8
	assert.InDelta(t, 3.9, m.Threshold, 1e-9)
}

func TestAdjustThreshold_decreasesWhenTooFewSpecies(t *testing.T) {
	m := NewSpeciationManager(3.0, 8)
	m.AdjustThreshold(2) // < 8/2
	assert.InDelta(t, 2.85, m.Threshold, 1e-9)
}

func TestAdjustThreshold_unchangedWithinBand(t *testing.T) {
	m := NewSpeciationManager(3.0, 8)
	m.AdjustThreshold(8)
	assert.Equal(t, 3.0, m.Threshold)
}
