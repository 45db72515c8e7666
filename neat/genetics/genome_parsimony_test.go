package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyParsimonyPenalty_passesThroughNonPositiveFitness(t *testing.T) {
	opts := newTestOptions()
	registry := NewInnovationRegistry(0, 0)
	g := newTestGenome(t, 1, 1, opts, registry, 1)

	assert.Equal(t, 0.0, g.ApplyParsimonyPenalty(0, opts))
	assert.Equal(t, -3.0, g.ApplyParsimonyPenalty(-3, opts))
}

func TestApplyParsimonyPenalty_passesThroughBelowComplexityThreshold(t *testing.T) {
	opts := newTestOptions()
	opts.ComplexityThreshold = 100
	registry := NewInnovationRegistry(0, 0)
	g := newTestGenome(t, 1, 1, opts, registry, 1)

	assert.Equal(t, 10.0, g.ApplyParsimonyPenalty(10, opts))
}

func TestApplyParsimonyPenalty_penalizesAboveThreshold(t *testing.T) {
	opts := newTestOptions()
	opts.ComplexityThreshold = 0
	opts.TargetComplexity = 0
	opts.ComplexityPenaltyCoefficient = 1.0
	opts.ConnectionsPenaltyCoefficient = 0
	registry := NewInnovationRegistry(0, 0)
	g := newTestGenome(t, 1, 1, opts, registry, 1)

	node := NewNodeGene(registry.RecordNodeInnovation(), HiddenNode, g.Nodes[g.OutputIds[0]].Activation)
	g.Nodes[node.Id] = node

	got := g.ApplyParsimonyPenalty(10.0, opts)
	assert.Less(t, got, 10.0)
}

func TestApplyParsimonyPenalty_floorsAtMinPositive(t *testing.T) {
	opts := newTestOptions()
	opts.ComplexityThreshold = 0
	opts.TargetComplexity = 0
	opts.ComplexityPenaltyCoefficient = 1000
	opts.ConnectionsPenaltyCoefficient = 1000
	registry := NewInnovationRegistry(0, 0)
	g := newTestGenome(t, 1, 1, opts, registry, 1)

	// Manufacture one hidden node directly so ComplexityThreshold=0 is exceeded.
	node := NewNodeGene(registry.RecordNodeInnovation(), HiddenNode, g.Nodes[g.OutputIds[0]].Activation)
	g.Nodes[node.Id] = node

	got := g.ApplyParsimonyPenalty(1.0, opts)
	assert.Equal(t, minPositiveFitness, got)
}
