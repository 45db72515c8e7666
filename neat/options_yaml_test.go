package neat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAMLOptions_overlaysDefaults(t *testing.T) {
	doc := `
population_size: 200
crossover_rate: "0.5"
network_type: ctrnn
log_level: debug
`
	opts, err := LoadYAMLOptions(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 200, opts.PopulationSize)
	assert.Equal(t, 0.5, opts.CrossoverRate)
	assert.Equal(t, ContinuousTimeRecurrentNetwork, opts.NetworkType)
	assert.Equal(t, LogLevelDebug, CurrentLogLevel)

	// Fields untouched by the document keep their defaults.
	defaults := NewDefaultOptions()
	assert.Equal(t, defaults.WeightMutationProb, opts.WeightMutationProb)
}

func TestLoadYAMLOptions_rejectsInvalidResult(t *testing.T) {
	doc := `population_size: -5`
	_, err := LoadYAMLOptions(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestLoadYAMLOptions_rejectsMalformedYAML(t *testing.T) {
	doc := `population_size: [this is not a scalar`
	_, err := LoadYAMLOptions(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestLoadYAMLOptions_emptyDocumentYieldsDefaults(t *testing.T) {
	opts, err := LoadYAMLOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, NewDefaultOptions().PopulationSize, opts.PopulationSize)
}
