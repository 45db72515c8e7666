package genetics

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/evolve-go/neat/neat"
	neatmath "github.com/evolve-go/neat/neat/math"
)

// Genome is a candidate solution encoded as a graph of node-genes and
// connection-genes. It is created by genesis or by crossover/clone, mutated
// in place by the mutation operators, evaluated by producing a network.Solver
// from it, and scored externally by the caller's fitness function. A genome
// is never destroyed in place; evolution replaces it with offspring.
type Genome struct {
	// Id is a diagnostic label, not consulted by any algorithm.
	Id int

	// Connections maps innovation id to connection gene.
	Connections map[int64]*ConnectionGene
	// Nodes maps node id to node gene.
	Nodes map[int]*NodeGene

	// pairs is the fast (source,target) duplicate test.
	pairs map[nodePair]bool

	// InputIds is the ordered list of input node ids (genesis order).
	InputIds []int
	// BiasId is the singleton bias node's id.
	BiasId int
	// OutputIds is the ordered list of output node ids (genesis order).
	OutputIds []int

	// Fitness is the raw score assigned by the caller's fitness function.
	Fitness float64
	// AdjustedFitness is Fitness divided by the owning species' membership
	// count (fitness sharing), computed by Population.Evolve.
	AdjustedFitness float64
}

// newEmptyGenome allocates a genome with no genes - used by genesis and as
// the crossover/clone target.
func newEmptyGenome(id int) *Genome {
	return &Genome{
		Id:          id,
		Connections: make(map[int64]*ConnectionGene),
		Nodes:       make(map[int]*NodeGene),
		pairs:       make(map[nodePair]bool),
	}
}

// Genesis builds a minimal fully-connected genome: inputSize Input nodes and
// one Bias node, each wired to every one of outputSize Output nodes, with a
// weight drawn uniformly from [-1,1] and an innovation id obtained from
// registry. For a continuous-time network, each output's time constant is
// drawn from [0.1,5.0] and its bias scalar from [-1,1]. Genesis numbers its
// nodes from 0 and advances registry's node counter past them, so node ids
// the registry mints later never collide with a genesis node.
func Genesis(id int, inputSize, outputSize int, opts *neat.Options, registry *InnovationRegistry, rng *rand.Rand) (*Genome, error) {
	if inputSize <= 0 || outputSize <= 0 {
		return nil, errors.Wrapf(neat.ErrInvalidParameter, "genesis requires positive input/output size, got %d/%d", inputSize, outputSize)
	}

	g := newEmptyGenome(id)

	inputActivation := neatmath.ActivationType(opts.InputActivationFunction)
	if inputActivation == "" {
		inputActivation = neatmath.IdentityActivation
	}
	outputActivation := neatmath.ActivationType(opts.OutputActivationFunction)
	if outputActivation == "" {
		outputActivation = neatmath.ActivationType(opts.DefaultActivationFunction)
	}

	nextNodeId := 0
	for i := 0; i < inputSize; i++ {
		node := NewNodeGene(nextNodeId, InputNode, inputActivation)
		g.Nodes[node.Id] = node
		g.InputIds = append(g.InputIds, node.Id)
		nextNodeId++
	}

	biasNode := NewNodeGene(nextNodeId, BiasNode, inputActivation)
	g.Nodes[biasNode.Id] = biasNode
	g.BiasId = biasNode.Id
	nextNodeId++

	isCTRNN := opts.NetworkType == neat.ContinuousTimeRecurrentNetwork

	for i := 0; i < outputSize; i++ {
		node := NewNodeGene(nextNodeId, OutputNode, outputActivation)
		if isCTRNN {
			node.TimeConstant = 0.1 + rng.Float64()*(5.0-0.1)
			node.Bias = uniform(rng, -1, 1)
		}
		g.Nodes[node.Id] = node
		g.OutputIds = append(g.OutputIds, node.Id)
		nextNodeId++
	}

	registry.mu.Lock()
	if registry.nextNodeId < nextNodeId {
		registry.nextNodeId = nextNodeId
	}
	registry.mu.Unlock()

	sources := append(append([]int{}, g.InputIds...), g.BiasId)
	for _, src := range sources {
		for _, dst := range g.OutputIds {
			innov := registry.RecordConnectionInnovation(src, dst)
			weight := uniform(rng, -1, 1)
			g.addConnection(NewConnectionGene(src, dst, weight, innov))
		}
	}

	return g, nil
}

// uniform returns a uniformly distributed float in [lo,hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// addConnection inserts gene into the genome's connection map and duplicate-test index.
func (g *Genome) addConnection(gene *ConnectionGene) {
	g.Connections[gene.InnovationId] = gene
	g.pairs[nodePair{gene.SourceId, gene.TargetId}] = true
}

// HasConnection reports whether (source,target) is already present.
func (g *Genome) HasConnection(source, target int) bool {
	return g.pairs[nodePair{source, target}]
}

// SortedConnections returns the genome's connection genes ordered by
// ascending innovation id - the deterministic iteration order the mutation
// operators use when drawing from the shared RNG.
func (g *Genome) SortedConnections() []*ConnectionGene {
	genes := make([]*ConnectionGene, 0, len(g.Connections))
	for _, gene := range g.Connections {
		genes = append(genes, gene)
	}
	sort.Slice(genes, func(i, j int) bool { return genes[i].InnovationId < genes[j].InnovationId })
	return genes
}

// SortedNodes returns the genome's node genes ordered by ascending node id -
// the deterministic iteration order the mutation operators require so that
// two genomes seeded identically draw from the shared RNG in the same
// sequence, regardless of Go's randomized map iteration order.
func (g *Genome) SortedNodes() []*NodeGene {
	nodes := make([]*NodeGene, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Id < nodes[j].Id })
	return nodes
}

// HiddenNodeCount returns the number of hidden nodes, used by the parsimony penalty.
func (g *Genome) HiddenNodeCount() int {
	count := 0
	for _, n := range g.Nodes {
		if n.Role == HiddenNode {
			count++
		}
	}
	return count
}

// Clone returns a deep, independent copy of the genome with Fitness reset to zero.
func (g *Genome) Clone(newId int) *Genome {
	clone := newEmptyGenome(newId)
	for id, n := range g.Nodes {
		clone.Nodes[id] = n.Clone()
	}
	for innov, c := range g.Connections {
		gene := c.Clone()
		clone.Connections[innov] = gene
		clone.pairs[nodePair{gene.SourceId, gene.TargetId}] = true
	}
	clone.InputIds = append([]int{}, g.InputIds...)
	clone.BiasId = g.BiasId
	clone.OutputIds = append([]int{}, g.OutputIds...)
	return clone
}

// CheckInvariants validates the structural invariants every genome reachable
// from genesis under any mutation sequence must hold. It is intended for
// tests, not for the hot mutation/evaluation path.
func (g *Genome) CheckInvariants() error {
	seenPairs := make(map[nodePair]bool)
	seenInnov := make(map[int64]bool)
	biasSeen := false
	for id, n := range g.Nodes {
		if n.Id != id {
			return errors.Errorf("node stored under key %d has Id %d", id, n.Id)
		}
		if n.Role == BiasNode {
			if biasSeen {
				return errors.New("more than one bias node present")
			}
			biasSeen = true
		}
	}
	if !biasSeen {
		return errors.New("bias node missing")
	}
	for innov, c := range g.Connections {
		if c.InnovationId != innov {
			return errors.Errorf("connection stored under key %d has InnovationId %d", innov, c.InnovationId)
		}
		if seenInnov[innov] {
			return errors.Errorf("duplicate innovation id %d", innov)
		}
		seenInnov[innov] = true

		pair := nodePair{c.SourceId, c.TargetId}
		if seenPairs[pair] {
			return errors.Errorf("duplicate connection (%d -> %d)", c.SourceId, c.TargetId)
		}
		seenPairs[pair] = true

		if c.SourceId == c.TargetId {
			return errors.Errorf("self-loop at node %d", c.SourceId)
		}
		src, ok := g.Nodes[c.SourceId]
		if !ok {
			return errors.Errorf("connection references unknown source node %d", c.SourceId)
		}
		dst, ok := g.Nodes[c.TargetId]
		if !ok {
			return errors.Errorf("connection references unknown target node %d", c.TargetId)
		}
		if dst.Role == InputNode {
			return errors.Errorf("connection targets an input node %d", c.TargetId)
		}
		if src.Role == OutputNode {
			return errors.Errorf("connection sources an output node %d", c.SourceId)
		}
	}
	return nil
}
