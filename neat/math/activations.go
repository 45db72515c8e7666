// Package math provides the catalog of scalar activation functions available
// to node-genes, keyed by name so genomes can carry an activation choice as
// plain data.
package math

import (
	"math"

	"github.com/pkg/errors"
)

// ActivationType names one registered activation function.
type ActivationType string

// The activation functions new node-genes may be assigned.
const (
	SigmoidActivation  ActivationType = "sigmoid"
	TanhActivation     ActivationType = "tanh"
	GaussianActivation ActivationType = "gaussian"
	LinearActivation   ActivationType = "linear"
	IdentityActivation ActivationType = "identity"
	SignActivation     ActivationType = "sign"
	SineActivation     ActivationType = "sine"
	StepActivation     ActivationType = "step"
)

// ActivationFunction maps one scalar input to one scalar output.
type ActivationFunction func(float64) float64

var catalog = map[ActivationType]ActivationFunction{
	SigmoidActivation:  sigmoid,
	TanhActivation:     math.Tanh,
	GaussianActivation: gaussian,
	LinearActivation:   linear,
	IdentityActivation: identity,
	SignActivation:     sign,
	SineActivation:     math.Sin,
	StepActivation:     step,
}

// Activate looks up and applies the named activation function to x.
func Activate(kind ActivationType, x float64) (float64, error) {
	fn, ok := catalog[kind]
	if !ok {
		return 0, errors.Errorf("unknown activation function: %q", kind)
	}
	return fn(x), nil
}

// Lookup returns the function for kind so callers that evaluate the same
// node repeatedly are not forced to pay the map lookup every time.
func Lookup(kind ActivationType) (ActivationFunction, error) {
	fn, ok := catalog[kind]
	if !ok {
		return nil, errors.Errorf("unknown activation function: %q", kind)
	}
	return fn, nil
}

// IsRegistered reports whether kind names a function in the catalog.
func IsRegistered(kind ActivationType) bool {
	_, ok := catalog[kind]
	return ok
}

// sigmoid is the standard logistic function.
func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func gaussian(x float64) float64 {
	return math.Exp(-(x * x) / 2.0)
}

func linear(x float64) float64 {
	return x
}

func identity(x float64) float64 {
	return x
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	} else if x > 0 {
		return 1
	}
	return 0
}

func step(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return 0
}
