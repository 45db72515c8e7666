package experiment

import (
	"time"

	"github.com/evolve-go/neat/neat/genetics"
)

// Generation is a snapshot of one evaluated generation of a Population, taken
// before Population.Evolve replaces it and filled by the caller (the core evolution loop has no notion of "solved" - that is a
// property of the user's fitness function and goal).
type Generation struct {
	// Id is the generation number this snapshot describes.
	Id int
	// Executed is when this snapshot was taken.
	Executed time.Time
	// Duration is the wall-clock time the generation's evaluate+evolve took.
	Duration time.Duration

	// Best is the fittest genome across the whole population this generation.
	Best *genetics.Genome
	// Solved is set by the caller once its goal criterion is met.
	Solved bool

	// Fitness holds one entry per species: that species' average fitness.
	Fitness Floats
	// Complexity holds one entry per species: the best member's hidden-node count.
	Complexity Floats

	// SpeciesCount is the number of species at the end of this generation.
	SpeciesCount int
	// CompatibilityThreshold is the Speciation Manager's threshold in force for
	// this generation (as last adjusted by the preceding Evolve call).
	CompatibilityThreshold float64
}

// FillFromPopulation populates Fitness, Complexity, SpeciesCount,
// CompatibilityThreshold, and Best from pop's current state. Call it after
// Population.Evaluate (or EvaluateParallel) but before Population.Evolve,
// while pop.Species still holds the generation's evaluated members - Evolve
// replaces them with the next generation's (not yet evaluated) offspring.
func (gen *Generation) FillFromPopulation(pop *genetics.Population) {
	gen.SpeciesCount = len(pop.Species)
	gen.CompatibilityThreshold = pop.Speciation.Threshold
	gen.Fitness = make(Floats, len(pop.Species))
	gen.Complexity = make(Floats, len(pop.Species))

	for i, s := range pop.Species {
		gen.Fitness[i] = s.AverageFitness()
		best := bestOf(s.Members)
		if best != nil {
			gen.Complexity[i] = float64(best.HiddenNodeCount())
			if gen.Best == nil || best.Fitness > gen.Best.Fitness {
				gen.Best = best
			}
		}
	}
}

func bestOf(members []*genetics.Genome) *genetics.Genome {
	var best *genetics.Genome
	for _, m := range members {
		if best == nil || m.Fitness > best.Fitness {
			best = m
		}
	}
	return best
}

// Generations is a chronologically ordered list of generation snapshots.
type Generations []Generation
