package genetics

import (
	neatmath "github.com/evolve-go/neat/neat/math"
)

// NodeRole classifies a NodeGene's position in the network graph.
type NodeRole byte

const (
	// InputNode nodes receive external stimuli and are never created by mutation.
	InputNode NodeRole = iota
	// BiasNode is the singleton constant-signal source.
	BiasNode
	// OutputNode nodes are read by the caller and are never created by mutation.
	OutputNode
	// HiddenNode nodes are only ever introduced by add-node mutation.
	HiddenNode
)

func (r NodeRole) String() string {
	switch r {
	case InputNode:
		return "input"
	case BiasNode:
		return "bias"
	case OutputNode:
		return "output"
	case HiddenNode:
		return "hidden"
	default:
		return "unknown"
	}
}

// NodeGene is one vertex of a Genome's graph representation.
type NodeGene struct {
	// Id is unique within the genome and, for hidden nodes, globally stable
	// across a run because it is minted by the Innovation Registry.
	Id int
	// Role tags the node's fixed structural position.
	Role NodeRole
	// Activation names the scalar nonlinearity applied at this node.
	Activation neatmath.ActivationType

	// Bias is the CTRNN bias scalar; meaningless for the feedforward evaluator.
	Bias float64
	// TimeConstant is the CTRNN leak rate (tau); must stay positive. Default 1.0.
	TimeConstant float64
}

// NewNodeGene constructs a node with the feedforward-safe default time
// constant; callers building a continuous-time genome overwrite TimeConstant
// and Bias with genesis- or mutation-sampled values.
func NewNodeGene(id int, role NodeRole, activation neatmath.ActivationType) *NodeGene {
	return &NodeGene{
		Id:           id,
		Role:         role,
		Activation:   activation,
		TimeConstant: 1.0,
	}
}

// Clone returns a deep copy of the node gene.
func (n *NodeGene) Clone() *NodeGene {
	clone := *n
	return &clone
}
