package neat

import (
	"github.com/pkg/errors"
)

// NetworkType selects which network evaluator variant genomes are built into.
type NetworkType string

const (
	// FeedForwardNetwork builds an acyclic network via topological sort; cycles
	// are silently dropped rather than rejected.
	FeedForwardNetwork NetworkType = "feedforward"
	// ContinuousTimeRecurrentNetwork builds a CTRNN solved with Euler integration.
	ContinuousTimeRecurrentNetwork NetworkType = "ctrnn"
)

// Options holds every tunable of the evolutionary run. It is usually loaded
// from YAML via LoadYAMLOptions, but can be constructed directly and passed
// to Validate before use.
type Options struct {
	// PopulationSize is the number of genomes carried per generation.
	PopulationSize int `yaml:"population_size"`

	// InitialCompatibilityThreshold seeds the Speciation Manager's adaptive threshold.
	InitialCompatibilityThreshold float64 `yaml:"initial_compatibility_threshold"`
	// CompatibilityDisjointCoefficient weights (disjoint+excess)/N in compatibility distance.
	CompatibilityDisjointCoefficient float64 `yaml:"compatibility_disjoint_coefficient"`
	// CompatibilityWeightCoefficient weights mean matching-weight difference in compatibility distance.
	CompatibilityWeightCoefficient float64 `yaml:"compatibility_weight_coefficient"`

	// WeightMutationProb is the probability a genome's weights are mutated at all.
	WeightMutationProb float64 `yaml:"weight_mutation_prob"`
	// WeightPerturbProb is, conditioned on mutation happening, the probability a
	// given connection's weight is perturbed rather than reassigned outright.
	WeightPerturbProb float64 `yaml:"weight_perturb_prob"`

	// NewConnectionProb is the probability of attempting an add-connection mutation.
	NewConnectionProb float64 `yaml:"new_connection_prob"`
	// NewNodeProb is the probability of attempting an add-node mutation.
	NewNodeProb float64 `yaml:"new_node_prob"`
	// ToggleEnableProb is the probability of toggling one connection's enabled flag.
	ToggleEnableProb float64 `yaml:"toggle_enable_prob"`

	// CrossoverRate is the probability a child is produced via crossover rather than cloning.
	CrossoverRate float64 `yaml:"crossover_rate"`
	// SurvivalThreshold is the fraction of each species retained as the breeding pool.
	SurvivalThreshold float64 `yaml:"survival_threshold"`
	// SpeciesElitism toggles elite carry-over on or off entirely; when false,
	// no species copies members forward unmutated regardless of Elitism.
	SpeciesElitism bool `yaml:"species_elitism"`
	// Elitism is the number of top members copied unmutated per qualifying
	// species (those with at least this many members), when SpeciesElitism is true.
	Elitism int `yaml:"elitism"`
	// StagnationLimit is how many generations a species' best fitness may plateau
	// before the species is removed (subject to the keep-at-least-one rule).
	StagnationLimit int `yaml:"stagnation_limit"`
	// TargetSpeciesCount drives the adaptive compatibility threshold.
	TargetSpeciesCount int `yaml:"target_species_count"`

	// BiasMutationProb is the per-node probability of mutating a CTRNN bias.
	BiasMutationProb float64 `yaml:"bias_mutation_prob"`
	// TimeConstantMutationProb is the per-node probability of mutating a CTRNN time constant.
	TimeConstantMutationProb float64 `yaml:"time_constant_mutation_prob"`
	// ParamPerturbProb is, conditioned on mutation happening, the probability a
	// CTRNN parameter is perturbed rather than reassigned outright.
	ParamPerturbProb float64 `yaml:"param_perturb_prob"`

	// AllowedActivationFunctions lists the permitted activation names; when
	// non-empty, Validate requires DefaultActivationFunction to be among them.
	// Mutation does not draw from this list: new hidden nodes always get
	// DefaultActivationFunction.
	AllowedActivationFunctions []string `yaml:"allowed_activation_functions"`
	// DefaultActivationFunction is used for new hidden/output nodes at genesis and add-node mutation.
	DefaultActivationFunction string `yaml:"default_activation_function"`
	// InputActivationFunction is used for Input nodes (conventionally Identity).
	InputActivationFunction string `yaml:"input_activation_function"`
	// OutputActivationFunction overrides DefaultActivationFunction for Output nodes when set.
	OutputActivationFunction string `yaml:"output_activation_function"`

	// ComplexityPenaltyCoefficient scales the (hidden-node-count above target)^1.5 term.
	ComplexityPenaltyCoefficient float64 `yaml:"complexity_penalty_coefficient"`
	// ConnectionsPenaltyCoefficient scales the raw connection-count term.
	ConnectionsPenaltyCoefficient float64 `yaml:"connections_penalty_coefficient"`
	// TargetComplexity is subtracted from the hidden-node count in the node
	// penalty term; hidden nodes at or below it add no node penalty. Whether
	// parsimony applies at all is decided by ComplexityThreshold.
	TargetComplexity float64 `yaml:"target_complexity"`
	// ComplexityThreshold is the hidden-node count gating whether parsimony applies at all.
	ComplexityThreshold int `yaml:"complexity_threshold"`

	// NetworkType selects the evaluator variant genomes are built into.
	NetworkType NetworkType `yaml:"network_type"`
	// TimeStepSize is the CTRNN Euler integration step (dt). Defaults to 0.1.
	TimeStepSize float64 `yaml:"time_step_size"`

	// LogLevel configures the package logger, see InitLogger.
	LogLevel string `yaml:"log_level"`
}

// NewDefaultOptions returns Options populated with reasonable defaults for
// every tunable (genesis weight ranges are fixed, not configurable, so they
// have no field here).
func NewDefaultOptions() *Options {
	return &Options{
		PopulationSize:                    150,
		InitialCompatibilityThreshold:     3.0,
		CompatibilityDisjointCoefficient:  1.0,
		CompatibilityWeightCoefficient:    0.4,
		WeightMutationProb:                0.8,
		WeightPerturbProb:                 0.9,
		NewConnectionProb:                 0.05,
		NewNodeProb:                       0.03,
		ToggleEnableProb:                  0.01,
		CrossoverRate:                     0.75,
		SurvivalThreshold:                 0.2,
		SpeciesElitism:                    true,
		Elitism:                           1,
		StagnationLimit:                   15,
		TargetSpeciesCount:                8,
		BiasMutationProb:                  0.3,
		TimeConstantMutationProb:          0.3,
		ParamPerturbProb:                  0.9,
		AllowedActivationFunctions:        []string{"sigmoid", "tanh", "gaussian", "identity"},
		DefaultActivationFunction:         "sigmoid",
		InputActivationFunction:           "identity",
		ComplexityPenaltyCoefficient:      0.05,
		ConnectionsPenaltyCoefficient:     0.002,
		TargetComplexity:                  15,
		ComplexityThreshold:               15,
		NetworkType:                       FeedForwardNetwork,
		TimeStepSize:                      0.1,
		LogLevel:                          string(LogLevelInfo),
	}
}

// Validate rejects internally inconsistent configuration, returning a wrapped ErrInvalidParameter.
func (o *Options) Validate() error {
	if o.PopulationSize <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "population_size must be positive, got %d", o.PopulationSize)
	}
	if o.TargetSpeciesCount <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "target_species_count must be positive, got %d", o.TargetSpeciesCount)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"weight_mutation_prob", o.WeightMutationProb},
		{"weight_perturb_prob", o.WeightPerturbProb},
		{"new_connection_prob", o.NewConnectionProb},
		{"new_node_prob", o.NewNodeProb},
		{"toggle_enable_prob", o.ToggleEnableProb},
		{"crossover_rate", o.CrossoverRate},
		{"survival_threshold", o.SurvivalThreshold},
		{"bias_mutation_prob", o.BiasMutationProb},
		{"time_constant_mutation_prob", o.TimeConstantMutationProb},
		{"param_perturb_prob", o.ParamPerturbProb},
	} {
		if p.value < 0 || p.value > 1 {
			return errors.Wrapf(ErrInvalidParameter, "%s must be within [0,1], got %f", p.name, p.value)
		}
	}
	switch o.NetworkType {
	case FeedForwardNetwork, ContinuousTimeRecurrentNetwork:
	default:
		return errors.Wrapf(ErrInvalidParameter, "unknown network_type: %q", o.NetworkType)
	}
	if o.DefaultActivationFunction == "" {
		return errors.Wrap(ErrInvalidParameter, "default_activation_function must be set")
	}
	found := false
	for _, a := range o.AllowedActivationFunctions {
		if a == o.DefaultActivationFunction {
			found = true
			break
		}
	}
	if len(o.AllowedActivationFunctions) > 0 && !found {
		return errors.Wrapf(ErrInvalidParameter,
			"default_activation_function %q is not present in allowed_activation_functions", o.DefaultActivationFunction)
	}
	if o.TimeStepSize <= 0 {
		return errors.Wrap(ErrInvalidParameter, "time_step_size must be positive")
	}
	return nil
}
