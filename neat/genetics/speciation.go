package genetics

// SpeciationManager holds the adaptive compatibility threshold and the
// monotonic species-id counter shared by a Population across its whole run.
type SpeciationManager struct {
	// Threshold is the current compatibility distance below which two
	// genomes are considered the same species.
	Threshold float64
	// TargetSpeciesCount drives AdjustThreshold.
	TargetSpeciesCount int

	nextSpeciesId int
}

// NewSpeciationManager constructs a manager seeded with the initial threshold
// and target species count from Options.
func NewSpeciationManager(initialThreshold float64, targetSpeciesCount int) *SpeciationManager {
	return &SpeciationManager{
		Threshold:          initialThreshold,
		TargetSpeciesCount: targetSpeciesCount,
	}
}

// NextSpeciesId returns a fresh, never-reused species id.
func (m *SpeciationManager) NextSpeciesId() int {
	id := m.nextSpeciesId
	m.nextSpeciesId++
	return id
}

// AdjustThreshold nudges Threshold toward producing TargetSpeciesCount
// species: more than double the target multiplies the threshold by 1.3, less
// than TargetSpeciesCount/2 (integer division, so an odd target's half is
// rounded down) multiplies it by 0.95, otherwise it is left alone.
// Discrete multiplicative steps are deliberately coarser than a PID-style
// controller at this population scale.
func (m *SpeciationManager) AdjustThreshold(speciesCount int) {
	switch {
	case speciesCount > 2*m.TargetSpeciesCount:
		m.Threshold *= 1.3
	case speciesCount < m.TargetSpeciesCount/2:
		m.Threshold *= 0.95
	}
}
