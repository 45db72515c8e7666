package experiment

import "time"

// Trial is one complete run of the evolution loop: a chronological sequence
// of Generation snapshots plus the wall-clock span the run took.
type Trial struct {
	// Id distinguishes this trial within an Experiment (e.g. the trial's seed).
	Id int
	// Generations is the chronologically ordered snapshot sequence.
	Generations Generations
}

// BestFitness returns the per-generation best-fitness series: one entry per
// generation, each that generation's Best genome's Fitness, or zero for a
// generation whose Best is nil. It is not a running maximum.
func (t *Trial) BestFitness() Floats {
	out := make(Floats, len(t.Generations))
	for i, gen := range t.Generations {
		if gen.Best != nil {
			out[i] = gen.Best.Fitness
		}
	}
	return out
}

// Solved reports whether any generation in the trial was marked solved.
func (t *Trial) Solved() bool {
	for _, gen := range t.Generations {
		if gen.Solved {
			return true
		}
	}
	return false
}

// SolvedGeneration returns the index of the first solved generation, or -1
// if the trial never solved.
func (t *Trial) SolvedGeneration() int {
	for i, gen := range t.Generations {
		if gen.Solved {
			return i
		}
	}
	return -1
}

// AvgGenerationDuration returns the mean wall-clock duration across every
// recorded generation, or zero if the trial has no generations.
func (t *Trial) AvgGenerationDuration() time.Duration {
	if len(t.Generations) == 0 {
		return 0
	}
	var total time.Duration
	for _, gen := range t.Generations {
		total += gen.Duration
	}
	return total / time.Duration(len(t.Generations))
}

// Duration returns the trial's total wall-clock span: the sum of every
// recorded generation's duration.
func (t *Trial) Duration() time.Duration {
	var total time.Duration
	for _, gen := range t.Generations {
		total += gen.Duration
	}
	return total
}

// LastSpeciesCount returns the species count of the final generation, or
// zero if the trial has no generations.
func (t *Trial) LastSpeciesCount() int {
	if len(t.Generations) == 0 {
		return 0
	}
	return t.Generations[len(t.Generations)-1].SpeciesCount
}
