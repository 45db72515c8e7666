package network

import (
	"math"

	"github.com/pkg/errors"

	"github.com/evolve-go/neat/neat"
	"github.com/evolve-go/neat/neat/genetics"
)

// DefaultTimeStep is the Euler integration step used when a caller does not
// override it.
const DefaultTimeStep = 0.1

type ctrnnEdge struct {
	source int
	weight float64
}

// ContinuousTimeRecurrentNetwork is the Beer-style CTRNN evaluator: every
// non-input node integrates tau*dy/dt = -y + bias + sum(w * sigmoid(y_src))
// one Euler step per Activate call, with sigmoid applied to the *source*
// node's state. Because the state persists across calls, a caller typically
// drives the network for several Activate calls per stimulus to let it
// settle - a single call does not relax the network to steady state.
type ContinuousTimeRecurrentNetwork struct {
	inputIds  []int
	biasId    int
	outputIds []int

	bias     map[int]float64
	tau      map[int]float64
	incoming map[int][]ctrnnEdge

	state map[int]float64
	dt    float64
}

// NewContinuousTimeRecurrentNetwork constructs a CTRNN from g using dt as the
// Euler step size; if dt <= 0, DefaultTimeStep is used instead. Returns a
// wrapped neat.ErrInvalidGenome if g fails its structural invariants.
func NewContinuousTimeRecurrentNetwork(g *genetics.Genome, dt float64) (*ContinuousTimeRecurrentNetwork, error) {
	if err := g.CheckInvariants(); err != nil {
		return nil, errors.Wrap(neat.ErrInvalidGenome, err.Error())
	}
	if dt <= 0 {
		dt = DefaultTimeStep
	}

	n := &ContinuousTimeRecurrentNetwork{
		inputIds:  append([]int{}, g.InputIds...),
		biasId:    g.BiasId,
		outputIds: append([]int{}, g.OutputIds...),
		bias:      make(map[int]float64),
		tau:       make(map[int]float64),
		incoming:  make(map[int][]ctrnnEdge),
		state:     make(map[int]float64),
		dt:        dt,
	}

	for id, node := range g.Nodes {
		if node.Role == genetics.HiddenNode || node.Role == genetics.OutputNode {
			n.bias[id] = node.Bias
			tc := node.TimeConstant
			if tc <= 0 {
				tc = 1.0
			}
			n.tau[id] = tc
		}
	}
	for _, c := range g.Connections {
		if !c.Enabled {
			continue
		}
		n.incoming[c.TargetId] = append(n.incoming[c.TargetId], ctrnnEdge{source: c.SourceId, weight: c.Weight})
	}

	n.Reset()
	return n, nil
}

// Activate places inputs at the input-node positions, integrates one Euler
// step for every non-input node, and returns sigmoid applied to the output
// nodes' post-step state.
func (n *ContinuousTimeRecurrentNetwork) Activate(inputs []float64) ([]float64, error) {
	if len(inputs) != len(n.inputIds) {
		return nil, errors.Wrapf(neat.ErrInvalidInput, "expected %d inputs, got %d", len(n.inputIds), len(inputs))
	}
	for i, id := range n.inputIds {
		n.state[id] = inputs[i]
	}

	next := make(map[int]float64, len(n.bias))
	for id := range n.bias {
		drive := n.bias[id]
		for _, e := range n.incoming[id] {
			drive += e.weight * sigmoid(n.state[e.source])
		}
		y := n.state[id]
		next[id] = y + n.dt*(-y+drive)/n.tau[id]
	}
	for id, y := range next {
		n.state[id] = y
	}

	outputs := make([]float64, len(n.outputIds))
	for i, id := range n.outputIds {
		outputs[i] = sigmoid(n.state[id])
	}
	return outputs, nil
}

// Reset clears every node's state to zero and restores the bias node's state
// to its constant 1.0.
func (n *ContinuousTimeRecurrentNetwork) Reset() {
	for id := range n.bias {
		n.state[id] = 0
	}
	for _, id := range n.inputIds {
		n.state[id] = 0
	}
	n.state[n.biasId] = 1.0
}

// InputSize returns the number of (non-bias) input nodes.
func (n *ContinuousTimeRecurrentNetwork) InputSize() int { return len(n.inputIds) }

// OutputSize returns the number of output nodes.
func (n *ContinuousTimeRecurrentNetwork) OutputSize() int { return len(n.outputIds) }

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
