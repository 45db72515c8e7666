package neat

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// LoadYAMLOptions reads a YAML-encoded configuration document and returns the
// validated Options it describes. It also initializes the package logger from
// the document's log_level field.
func LoadYAMLOptions(r io.Reader) (*Options, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read NEAT options")
	}

	var raw map[string]interface{}
	if err = yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode NEAT options from YAML")
	}

	opts := NewDefaultOptions()
	if err = opts.mergeRaw(raw); err != nil {
		return nil, errors.Wrap(err, "failed to apply NEAT options")
	}

	if err = InitLogger(opts.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err = opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid NEAT options")
	}
	return opts, nil
}

// mergeRaw overlays a loosely-typed YAML document onto the defaults, using
// spf13/cast to tolerate the usual YAML looseness (e.g. "0.2" quoted as a
// string, or an integer written where a float is expected).
func (o *Options) mergeRaw(raw map[string]interface{}) error {
	floatField := func(key string, dst *float64) error {
		if v, ok := raw[key]; ok {
			f, err := cast.ToFloat64E(v)
			if err != nil {
				return errors.Wrapf(err, "field %s", key)
			}
			*dst = f
		}
		return nil
	}
	intField := func(key string, dst *int) error {
		if v, ok := raw[key]; ok {
			i, err := cast.ToIntE(v)
			if err != nil {
				return errors.Wrapf(err, "field %s", key)
			}
			*dst = i
		}
		return nil
	}
	strField := func(key string, dst *string) {
		if v, ok := raw[key]; ok {
			*dst = cast.ToString(v)
		}
	}
	boolField := func(key string, dst *bool) error {
		if v, ok := raw[key]; ok {
			b, err := cast.ToBoolE(v)
			if err != nil {
				return errors.Wrapf(err, "field %s", key)
			}
			*dst = b
		}
		return nil
	}

	if err := intField("population_size", &o.PopulationSize); err != nil {
		return err
	}
	if err := floatField("initial_compatibility_threshold", &o.InitialCompatibilityThreshold); err != nil {
		return err
	}
	if err := floatField("compatibility_disjoint_coefficient", &o.CompatibilityDisjointCoefficient); err != nil {
		return err
	}
	if err := floatField("compatibility_weight_coefficient", &o.CompatibilityWeightCoefficient); err != nil {
		return err
	}
	if err := floatField("weight_mutation_prob", &o.WeightMutationProb); err != nil {
		return err
	}
	if err := floatField("weight_perturb_prob", &o.WeightPerturbProb); err != nil {
		return err
	}
	if err := floatField("new_connection_prob", &o.NewConnectionProb); err != nil {
		return err
	}
	if err := floatField("new_node_prob", &o.NewNodeProb); err != nil {
		return err
	}
	if err := floatField("toggle_enable_prob", &o.ToggleEnableProb); err != nil {
		return err
	}
	if err := floatField("crossover_rate", &o.CrossoverRate); err != nil {
		return err
	}
	if err := floatField("survival_threshold", &o.SurvivalThreshold); err != nil {
		return err
	}
	if err := boolField("species_elitism", &o.SpeciesElitism); err != nil {
		return err
	}
	if err := intField("elitism", &o.Elitism); err != nil {
		return err
	}
	if err := intField("stagnation_limit", &o.StagnationLimit); err != nil {
		return err
	}
	if err := intField("target_species_count", &o.TargetSpeciesCount); err != nil {
		return err
	}
	if err := floatField("bias_mutation_prob", &o.BiasMutationProb); err != nil {
		return err
	}
	if err := floatField("time_constant_mutation_prob", &o.TimeConstantMutationProb); err != nil {
		return err
	}
	if err := floatField("param_perturb_prob", &o.ParamPerturbProb); err != nil {
		return err
	}
	if v, ok := raw["allowed_activation_functions"]; ok {
		items, err := cast.ToStringSliceE(v)
		if err != nil {
			return errors.Wrap(err, "field allowed_activation_functions")
		}
		o.AllowedActivationFunctions = items
	}
	strField("default_activation_function", &o.DefaultActivationFunction)
	strField("input_activation_function", &o.InputActivationFunction)
	strField("output_activation_function", &o.OutputActivationFunction)
	if err := floatField("complexity_penalty_coefficient", &o.ComplexityPenaltyCoefficient); err != nil {
		return err
	}
	if err := floatField("connections_penalty_coefficient", &o.ConnectionsPenaltyCoefficient); err != nil {
		return err
	}
	if err := floatField("target_complexity", &o.TargetComplexity); err != nil {
		return err
	}
	if err := intField("complexity_threshold", &o.ComplexityThreshold); err != nil {
		return err
	}
	if v, ok := raw["network_type"]; ok {
		o.NetworkType = NetworkType(cast.ToString(v))
	}
	if err := floatField("time_step_size", &o.TimeStepSize); err != nil {
		return err
	}
	strField("log_level", &o.LogLevel)
	return nil
}
