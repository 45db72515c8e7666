package genetics

import (
	"math"

	"github.com/evolve-go/neat/neat"
)

// minPositiveFitness is the floor applied after a parsimony penalty is
// subtracted, so a heavily bloated genome never reports non-positive fitness
// purely from the penalty (which would make it indistinguishable from a
// genome the caller's fitness function rejected outright).
const minPositiveFitness = 1e-6

// ApplyParsimonyPenalty returns rawFitness adjusted for genome size. Raw
// fitness at or below zero passes through unchanged - the caller's fitness
// function has already rejected the genome and parsimony has nothing useful
// to add. At or below opts.ComplexityThreshold hidden nodes the genome is young
// enough that penalizing it would punish innovation in its infancy, so it
// also passes through unchanged. Otherwise the penalty is
// ComplexityPenaltyCoefficient*(hidden-target)^1.5 plus
// ConnectionsPenaltyCoefficient*|connections|, and the result is floored at
// minPositiveFitness.
func (g *Genome) ApplyParsimonyPenalty(rawFitness float64, opts *neat.Options) float64 {
	if rawFitness <= 0 {
		return rawFitness
	}
	hidden := g.HiddenNodeCount()
	if hidden <= opts.ComplexityThreshold {
		return rawFitness
	}

	excess := float64(hidden) - opts.TargetComplexity
	if excess < 0 {
		excess = 0
	}
	penalty := opts.ComplexityPenaltyCoefficient*math.Pow(excess, 1.5) +
		opts.ConnectionsPenaltyCoefficient*float64(len(g.Connections))

	adjusted := rawFitness - penalty
	if adjusted < minPositiveFitness {
		adjusted = minPositiveFitness
	}
	return adjusted
}
