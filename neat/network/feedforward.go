package network

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/evolve-go/neat/neat"
	"github.com/evolve-go/neat/neat/genetics"
	neatmath "github.com/evolve-go/neat/neat/math"
)

type feedforwardEdge struct {
	source int
	weight float64
}

// FeedforwardNetwork evaluates a genome's enabled connections restricted to
// their acyclic subgraph: at construction time a Kahn-style peel computes a
// topological order of the nodes reachable from in-degree zero, and any edge
// that cannot be consumed that way - because it only ever sits inside a cycle
// - is silently dropped rather than causing construction to fail.
type FeedforwardNetwork struct {
	inputIds  []int
	biasId    int
	outputIds []int

	order      []int
	incoming   map[int][]feedforwardEdge
	activation map[int]neatmath.ActivationFunction
}

// NewFeedforwardNetwork constructs a FeedforwardNetwork from g. It returns a
// wrapped neat.ErrInvalidGenome if g fails its structural invariants.
func NewFeedforwardNetwork(g *genetics.Genome) (*FeedforwardNetwork, error) {
	if err := g.CheckInvariants(); err != nil {
		return nil, errors.Wrap(neat.ErrInvalidGenome, err.Error())
	}

	n := &FeedforwardNetwork{
		inputIds:   append([]int{}, g.InputIds...),
		biasId:     g.BiasId,
		outputIds:  append([]int{}, g.OutputIds...),
		incoming:   make(map[int][]feedforwardEdge),
		activation: make(map[int]neatmath.ActivationFunction),
	}

	for id, node := range g.Nodes {
		fn, err := neatmath.Lookup(node.Activation)
		if err != nil {
			return nil, errors.Wrapf(neat.ErrInvalidGenome, "node %d: %s", id, err)
		}
		n.activation[id] = fn
	}

	inDegree := make(map[int]int, len(g.Nodes))
	outgoing := make(map[int][]*genetics.ConnectionGene)
	for id := range g.Nodes {
		inDegree[id] = 0
	}
	for _, c := range g.Connections {
		if !c.Enabled {
			continue
		}
		outgoing[c.SourceId] = append(outgoing[c.SourceId], c)
		inDegree[c.TargetId]++
	}

	var queue []int
	for id, d := range inDegree {
		if d == 0 {
			queue = append(queue, id)
		}
	}
	sort.Ints(queue)

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		n.order = append(n.order, node)

		outs := outgoing[node]
		sort.Slice(outs, func(i, j int) bool { return outs[i].TargetId < outs[j].TargetId })
		for _, c := range outs {
			n.incoming[c.TargetId] = append(n.incoming[c.TargetId], feedforwardEdge{source: node, weight: c.Weight})
			inDegree[c.TargetId]--
			if inDegree[c.TargetId] == 0 {
				queue = append(queue, c.TargetId)
				sort.Ints(queue)
			}
		}
	}

	return n, nil
}

// Activate seeds every node's signal at zero, places inputs (and a constant
// 1.0 at the bias node) at their positions, visits nodes in topological
// order summing w*signal(source) over surviving incoming edges and applying
// the node's activation function, and returns the signals at the output
// positions. A node that never reaches in-degree zero - because every path
// into it passes through a cycle - is never visited and its output is 0.
func (n *FeedforwardNetwork) Activate(inputs []float64) ([]float64, error) {
	if len(inputs) != len(n.inputIds) {
		return nil, errors.Wrapf(neat.ErrInvalidInput, "expected %d inputs, got %d", len(n.inputIds), len(inputs))
	}

	signal := make(map[int]float64, len(n.activation))
	for i, id := range n.inputIds {
		signal[id] = inputs[i]
	}
	signal[n.biasId] = 1.0

	inputSet := make(map[int]bool, len(n.inputIds)+1)
	for _, id := range n.inputIds {
		inputSet[id] = true
	}
	inputSet[n.biasId] = true

	for _, node := range n.order {
		if inputSet[node] {
			continue
		}
		sum := 0.0
		for _, e := range n.incoming[node] {
			sum += e.weight * signal[e.source]
		}
		signal[node] = n.activation[node](sum)
	}

	outputs := make([]float64, len(n.outputIds))
	for i, id := range n.outputIds {
		outputs[i] = signal[id]
	}
	return outputs, nil
}

// Reset is a no-op: the feedforward evaluator carries no state across calls.
func (n *FeedforwardNetwork) Reset() {}

// InputSize returns the number of (non-bias) input nodes.
func (n *FeedforwardNetwork) InputSize() int { return len(n.inputIds) }

// OutputSize returns the number of output nodes.
func (n *FeedforwardNetwork) OutputSize() int { return len(n.outputIds) }
