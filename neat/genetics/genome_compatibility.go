package genetics

import (
	"math"

	"github.com/evolve-go/neat/neat"
)

// smallGenomeNormalization is the genome size below which N in the
// compatibility distance formula is clamped to 1, so two very small genomes
// are not driven apart purely because disjoint genes are a large fraction of
// a tiny denominator.
const smallGenomeNormalization = 20

// CompatibilityDistance computes the weighted sum of normalized disjoint-plus-
// excess gene count and mean matching-weight difference between g and other.
// It is symmetric: CompatibilityDistance(a,b) == CompatibilityDistance(b,a).
func (g *Genome) CompatibilityDistance(other *Genome, opts *neat.Options) float64 {
	var disjoint, excess, weightDiffTotal float64
	var matching int

	maxInnovG, maxInnovOther := maxInnovationId(g), maxInnovationId(other)

	seen := make(map[int64]bool, len(g.Connections)+len(other.Connections))
	for innov, geneA := range g.Connections {
		seen[innov] = true
		geneB, inBoth := other.Connections[innov]
		if inBoth {
			matching++
			weightDiffTotal += math.Abs(geneA.Weight - geneB.Weight)
			continue
		}
		if innov > maxInnovOther {
			excess++
		} else {
			disjoint++
		}
	}
	for innov := range other.Connections {
		if seen[innov] {
			continue
		}
		if innov > maxInnovG {
			excess++
		} else {
			disjoint++
		}
	}

	n := float64(maxInt(len(g.Connections), len(other.Connections)))
	if n < smallGenomeNormalization {
		n = 1
	}

	avgWeightDiff := 0.0
	if matching > 0 {
		avgWeightDiff = weightDiffTotal / float64(matching)
	}

	return opts.CompatibilityDisjointCoefficient*(disjoint+excess)/n + opts.CompatibilityWeightCoefficient*avgWeightDiff
}

// maxInnovationId returns the largest innovation id present in g, or -1 if
// g has no connections.
func maxInnovationId(g *Genome) int64 {
	max := int64(-1)
	for innov := range g.Connections {
		if innov > max {
			max = innov
		}
	}
	return max
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
