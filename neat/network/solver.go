// Package network builds executable networks from genetics.Genome values and
// computes their outputs for given inputs. Two variants are provided:
// Feedforward (acyclic, topologically sorted) and ContinuousTimeRecurrent
// (Euler-integrated CTRNN). Both satisfy the Solver interface below.
package network

import (
	"github.com/evolve-go/neat/neat"
	"github.com/evolve-go/neat/neat/genetics"
)

// Build constructs the Solver variant named by opts.NetworkType from g.
func Build(g *genetics.Genome, opts *neat.Options) (Solver, error) {
	switch opts.NetworkType {
	case neat.ContinuousTimeRecurrentNetwork:
		return NewContinuousTimeRecurrentNetwork(g, opts.TimeStepSize)
	case neat.FeedForwardNetwork, "":
		return NewFeedforwardNetwork(g)
	default:
		return nil, neat.ErrInvalidParameter
	}
}

// Solver is the interface shared by every network evaluator variant: build
// from a genome, then activate on inputs to get outputs.
type Solver interface {
	// Activate computes outputs for the given input vector. Returns
	// neat.ErrInvalidInput (wrapped) if len(inputs) does not match the
	// network's input arity.
	Activate(inputs []float64) ([]float64, error)

	// Reset clears any internal state accumulated across prior Activate
	// calls. Feedforward networks are stateless and treat this as a no-op;
	// CTRNN networks clear their activation vector.
	Reset()

	// InputSize and OutputSize report the network's fixed arity.
	InputSize() int
	OutputSize() int
}
