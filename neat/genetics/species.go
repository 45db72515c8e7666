package genetics

import (
	"math/rand"
	"sort"

	"github.com/evolve-go/neat/neat"
)

// Species is a cluster of genomes within one compatibility-distance ball of a
// representative. Its representative is reselected each generation from
// surviving members; it is removed by the Population when it becomes empty
// or exceeds the stagnation limit, subject to the "keep at least one" rule.
type Species struct {
	// Id is assigned once by the SpeciationManager and never reused.
	Id int
	// Representative is the genome new members are compared against.
	Representative *Genome
	// Members holds the species' current genomes.
	Members []*Genome

	// BestFitness is the best raw fitness any member of this species ever achieved.
	BestFitness float64
	// BestGenome is the genome that achieved BestFitness.
	BestGenome *Genome
	// Staleness counts consecutive generations since BestFitness last improved.
	Staleness int
}

// NewSpecies constructs a species around representative, with representative
// as its sole initial member.
func NewSpecies(id int, representative *Genome) *Species {
	return &Species{
		Id:             id,
		Representative: representative,
		Members:        []*Genome{representative},
	}
}

// IsCompatible reports whether candidate belongs in this species: its
// compatibility distance to the representative must be strictly less than
// threshold.
func (s *Species) IsCompatible(candidate *Genome, threshold float64, opts *neat.Options) bool {
	return candidate.CompatibilityDistance(s.Representative, opts) < threshold
}

// AverageFitness returns the mean raw fitness of the species' members, or
// zero when the species has no members.
func (s *Species) AverageFitness() float64 {
	if len(s.Members) == 0 {
		return 0
	}
	total := 0.0
	for _, m := range s.Members {
		total += m.Fitness
	}
	return total / float64(len(s.Members))
}

// UpdateBest finds the member of maximum raw fitness; if it beats the
// species' recorded best, the best/representative/staleness are all updated
// to reflect the improvement, otherwise Staleness is incremented.
func (s *Species) UpdateBest() {
	if len(s.Members) == 0 {
		return
	}
	best := s.Members[0]
	for _, m := range s.Members[1:] {
		if m.Fitness > best.Fitness {
			best = m
		}
	}
	if s.BestGenome == nil || best.Fitness > s.BestFitness {
		s.BestFitness = best.Fitness
		s.BestGenome = best
		s.Representative = best
		s.Staleness = 0
	} else {
		s.Staleness++
	}
}

// IsStagnant reports whether the species has gone stagnationLimit
// generations without an improvement to BestFitness.
func (s *Species) IsStagnant(stagnationLimit int) bool {
	return s.Staleness >= stagnationLimit
}

// Cull sorts members by ascending raw fitness and retains the top
// ceil(|members|/2), discarding the rest.
func (s *Species) Cull() {
	if len(s.Members) <= 1 {
		return
	}
	sort.Slice(s.Members, func(i, j int) bool { return s.Members[i].Fitness < s.Members[j].Fitness })
	keep := (len(s.Members) + 1) / 2
	s.Members = s.Members[len(s.Members)-keep:]
}

// BreedingPool sorts a copy of members by ascending fitness and returns the
// top fraction of size ceil(|members|*survivalThreshold), at least one.
func (s *Species) BreedingPool(survivalThreshold float64) []*Genome {
	sorted := make([]*Genome, len(s.Members))
	copy(sorted, s.Members)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Fitness < sorted[j].Fitness })

	keep := int(float64(len(sorted))*survivalThreshold + 0.999999)
	if keep < 1 {
		keep = 1
	}
	if keep > len(sorted) {
		keep = len(sorted)
	}
	return sorted[len(sorted)-keep:]
}

// TopMembers sorts a copy of members by descending fitness and returns the
// first n (or fewer, if the species is smaller than n).
func (s *Species) TopMembers(n int) []*Genome {
	sorted := make([]*Genome, len(s.Members))
	copy(sorted, s.Members)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Fitness > sorted[j].Fitness })
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// ReselectRepresentative replaces Representative with a uniformly random
// surviving member. It is a no-op when the species has no members.
func (s *Species) ReselectRepresentative(rng *rand.Rand) {
	if len(s.Members) == 0 {
		return
	}
	s.Representative = s.Members[rng.Intn(len(s.Members))]
}
