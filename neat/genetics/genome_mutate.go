package genetics

import (
	"math/rand"

	"github.com/evolve-go/neat/neat"
	neatmath "github.com/evolve-go/neat/neat/math"
)

// MutateWeights iterates all connections; with probability opts.WeightMutationProb
// it runs at all, and per connection either perturbs the weight by a uniform
// delta in [-0.5,0.5] (probability opts.WeightPerturbProb) or reassigns it to a
// uniform value in [-1,1].
func (g *Genome) MutateWeights(opts *neat.Options, rng *rand.Rand) {
	if rng.Float64() >= opts.WeightMutationProb {
		return
	}
	for _, c := range g.SortedConnections() {
		if rng.Float64() < opts.WeightPerturbProb {
			c.Weight += uniform(rng, -0.5, 0.5)
		} else {
			c.Weight = uniform(rng, -1, 1)
		}
	}
}

// MutateAddConnection enumerates all ordered node pairs (a,b) such that a is
// not an Output, b is neither an Input nor the Bias, a != b, and (a,b) is not
// already present.
// If any exist, one is picked uniformly and wired with a registry-assigned
// innovation id. If crossover has already produced a gene with that
// innovation id in this genome, the mutation is a no-op.
func (g *Genome) MutateAddConnection(registry *InnovationRegistry, rng *rand.Rand) {
	nodes := g.SortedNodes()
	var candidates []nodePair
	for _, a := range nodes {
		if a.Role == OutputNode {
			continue
		}
		for _, b := range nodes {
			if b.Role == InputNode || b.Role == BiasNode || b.Id == a.Id {
				continue
			}
			if g.HasConnection(a.Id, b.Id) {
				continue
			}
			candidates = append(candidates, nodePair{a.Id, b.Id})
		}
	}
	if len(candidates) == 0 {
		return
	}
	pick := candidates[rng.Intn(len(candidates))]
	innov := registry.RecordConnectionInnovation(pick.source, pick.target)
	if _, exists := g.Connections[innov]; exists {
		return
	}
	g.addConnection(NewConnectionGene(pick.source, pick.target, uniform(rng, -1, 1), innov))
}

// MutateAddNode selects an enabled connection uniformly at random (a no-op if
// none exists), disables it, and splits it via the registry: the incoming
// half gets weight 1.0 (preserving the pre-mutation function in expectation)
// and the outgoing half inherits the old weight.
func (g *Genome) MutateAddNode(opts *neat.Options, registry *InnovationRegistry, rng *rand.Rand) {
	var enabled []*ConnectionGene
	for _, c := range g.SortedConnections() {
		if c.Enabled {
			enabled = append(enabled, c)
		}
	}
	if len(enabled) == 0 {
		return
	}
	chosen := enabled[rng.Intn(len(enabled))]
	chosen.Enabled = false

	newNodeId, inInnov, outInnov := registry.RecordNodeSplit(chosen.InnovationId, chosen.SourceId, chosen.TargetId)

	if _, exists := g.Nodes[newNodeId]; !exists {
		node := NewNodeGene(newNodeId, HiddenNode, neatmath.ActivationType(opts.DefaultActivationFunction))
		if opts.NetworkType == neat.ContinuousTimeRecurrentNetwork {
			node.TimeConstant = 0.1 + rng.Float64()*(5.0-0.1)
			node.Bias = uniform(rng, -1, 1)
		}
		g.Nodes[node.Id] = node
	}

	g.addConnection(NewConnectionGene(chosen.SourceId, newNodeId, 1.0, inInnov))
	g.addConnection(NewConnectionGene(newNodeId, chosen.TargetId, chosen.Weight, outInnov))
}

// MutateToggleEnable flips the Enabled flag of one uniformly-chosen connection
// with probability opts.ToggleEnableProb.
func (g *Genome) MutateToggleEnable(opts *neat.Options, rng *rand.Rand) {
	if rng.Float64() >= opts.ToggleEnableProb || len(g.Connections) == 0 {
		return
	}
	genes := g.SortedConnections()
	chosen := genes[rng.Intn(len(genes))]
	chosen.Enabled = !chosen.Enabled
}

// MutateContinuousTimeParams perturbs or reassigns, per non-input node, its
// CTRNN bias (probability opts.BiasMutationProb, clamped to [-8,8]) and time
// constant (probability opts.TimeConstantMutationProb, clamped to >= 0.1).
// Meaningless for feedforward genomes but harmless to call regardless.
func (g *Genome) MutateContinuousTimeParams(opts *neat.Options, rng *rand.Rand) {
	for _, n := range g.SortedNodes() {
		if n.Role == InputNode || n.Role == BiasNode {
			continue
		}
		if rng.Float64() < opts.BiasMutationProb {
			if rng.Float64() < opts.ParamPerturbProb {
				n.Bias = clamp(n.Bias+uniform(rng, -0.5, 0.5), -8, 8)
			} else {
				n.Bias = uniform(rng, -8, 8)
			}
		}
		if rng.Float64() < opts.TimeConstantMutationProb {
			if rng.Float64() < opts.ParamPerturbProb {
				n.TimeConstant = maxFloat(n.TimeConstant+uniform(rng, -0.1, 0.1), 0.1)
			} else {
				n.TimeConstant = 0.1 + rng.Float64()*(5.0-0.1)
			}
		}
	}
}

// Mutate applies the genome's full structural-and-weight mutation pass, used
// by Population when synthesizing offspring. Add-node and add-connection are
// each gated by their own independent probability roll, so both, either, or
// neither may fire in a single call.
func (g *Genome) Mutate(opts *neat.Options, registry *InnovationRegistry, rng *rand.Rand) {
	if rng.Float64() < opts.NewNodeProb {
		g.MutateAddNode(opts, registry, rng)
	}
	if rng.Float64() < opts.NewConnectionProb {
		g.MutateAddConnection(registry, rng)
	}
	g.MutateWeights(opts, rng)
	g.MutateToggleEnable(opts, rng)
	if opts.NetworkType == neat.ContinuousTimeRecurrentNetwork {
		g.MutateContinuousTimeParams(opts, rng)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
