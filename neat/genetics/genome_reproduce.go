package genetics

import (
	"math/rand"
	"sort"
)

// Crossover produces a child genome from a and b. The child receives every
// node of the fitter parent (by raw Fitness; a coin flip on exact ties) plus
// any node only the other parent has. The fitter parent supplies
// disjoint/excess connection genes outright; matching connection genes are
// inherited from a uniformly-chosen parent.
// A connection whose (source,target) pair is already present in the child is
// skipped, since crossover can otherwise reintroduce a gene via two different
// innovation ids. The child's fitness starts at zero.
func Crossover(childId int, a, b *Genome, rng *rand.Rand) *Genome {
	fitParent, otherParent := a, b
	if a.Fitness < b.Fitness {
		fitParent, otherParent = b, a
	} else if a.Fitness == b.Fitness && rng.Float64() < 0.5 {
		fitParent, otherParent = b, a
	}

	child := newEmptyGenome(childId)
	for id, n := range fitParent.Nodes {
		child.Nodes[id] = n.Clone()
	}
	for id, n := range otherParent.Nodes {
		if _, ok := child.Nodes[id]; !ok {
			child.Nodes[id] = n.Clone()
		}
	}
	child.InputIds = append([]int{}, fitParent.InputIds...)
	child.BiasId = fitParent.BiasId
	child.OutputIds = append([]int{}, fitParent.OutputIds...)

	allInnovations := make(map[int64]bool, len(fitParent.Connections)+len(otherParent.Connections))
	for innov := range fitParent.Connections {
		allInnovations[innov] = true
	}
	for innov := range otherParent.Connections {
		allInnovations[innov] = true
	}
	ordered := make([]int64, 0, len(allInnovations))
	for innov := range allInnovations {
		ordered = append(ordered, innov)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	for _, innov := range ordered {
		geneA, inFit := fitParent.Connections[innov]
		geneB, inOther := otherParent.Connections[innov]

		var source *ConnectionGene
		switch {
		case inFit && inOther:
			if rng.Float64() < 0.5 {
				source = geneA
			} else {
				source = geneB
			}
		case inFit:
			source = geneA
		default:
			// disjoint/excess gene present only in the less-fit parent: skip.
			continue
		}

		if child.HasConnection(source.SourceId, source.TargetId) {
			continue
		}
		child.addConnection(source.Clone())
	}

	return child
}
