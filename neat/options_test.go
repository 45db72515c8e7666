package neat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultOptions_isValid(t *testing.T) {
	assert.NoError(t, NewDefaultOptions().Validate())
}

func TestValidate_rejectsNonPositivePopulationSize(t *testing.T) {
	opts := NewDefaultOptions()
	opts.PopulationSize = 0
	assert.Error(t, opts.Validate())
}

func TestValidate_rejectsProbabilityOutOfRange(t *testing.T) {
	opts := NewDefaultOptions()
	opts.CrossoverRate = 1.5
	assert.Error(t, opts.Validate())

	opts = NewDefaultOptions()
	opts.WeightMutationProb = -0.1
	assert.Error(t, opts.Validate())
}

func TestValidate_rejectsUnknownNetworkType(t *testing.T) {
	opts := NewDefaultOptions()
	opts.NetworkType = NetworkType("bogus")
	assert.Error(t, opts.Validate())
}

func TestValidate_rejectsNonPositiveTimeStep(t *testing.T) {
	opts := NewDefaultOptions()
	opts.TimeStepSize = 0
	assert.Error(t, opts.Validate())
}

func TestValidate_rejectsDefaultActivationNotInAllowedList(t *testing.T) {
	opts := NewDefaultOptions()
	opts.AllowedActivationFunctions = []string{"tanh", "gaussian"}
	opts.DefaultActivationFunction = "sigmoid"
	assert.Error(t, opts.Validate())
}

func TestValidate_emptyAllowedListSkipsMembershipCheck(t *testing.T) {
	opts := NewDefaultOptions()
	opts.AllowedActivationFunctions = nil
	assert.NoError(t, opts.Validate())
}
