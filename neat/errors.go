package neat

import "github.com/pkg/errors"

// Sentinel error kinds surfaced across the package boundary. Callers should
// compare against these with errors.Is - the concrete error returned is
// usually wrapped with github.com/pkg/errors to carry call-site context.
var (
	// ErrInvalidParameter is returned when a configuration value is internally
	// inconsistent, e.g. a negative population size or a probability outside [0,1].
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidGenome is returned when a structurally ill-formed genome reaches
	// a network evaluator's constructor.
	ErrInvalidGenome = errors.New("invalid genome")

	// ErrInvalidInput is returned when the input vector passed to Activate does
	// not match the network's input arity.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCycleDetected is reserved for evaluators that choose to reject cyclic
	// graphs outright. The feedforward evaluator does not return it - see
	// neat/network/feedforward.go.
	ErrCycleDetected = errors.New("cycle detected")
)
