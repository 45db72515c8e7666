package experiment

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolve-go/neat/neat/genetics"
)

func sampleExperiment() Experiment {
	solved := &genetics.Genome{Fitness: 16, Nodes: map[int]*genetics.NodeGene{1: {}, 2: {}}}
	unsolvedBest := &genetics.Genome{Fitness: 3}

	return Experiment{
		Id:   1,
		Name: "xor",
		Trials: []Trial{
			{
				Id: 0,
				Generations: Generations{
					{Id: 0, Fitness: Floats{1, 2}, Complexity: Floats{0, 0}, SpeciesCount: 2, Best: unsolvedBest, Duration: time.Second},
					{Id: 1, Fitness: Floats{5, 6}, Complexity: Floats{1, 1}, SpeciesCount: 3, Best: solved, Solved: true, Duration: time.Second},
				},
			},
			{
				Id: 1,
				Generations: Generations{
					{Id: 0, Fitness: Floats{1}, Complexity: Floats{0}, SpeciesCount: 1, Best: unsolvedBest, Duration: time.Second},
				},
			},
		},
	}
}

func TestExperiment_TrialsSolvedAndSuccessRate(t *testing.T) {
	e := sampleExperiment()
	assert.Equal(t, 1, e.TrialsSolved())
	assert.Equal(t, 0.5, e.SuccessRate())
}

func TestExperiment_AvgTrialDuration(t *testing.T) {
	e := sampleExperiment()
	assert.Equal(t, 3*time.Second/2, e.AvgTrialDuration())
}

func TestExperiment_AvgGenerationsPerTrial(t *testing.T) {
	e := sampleExperiment()
	assert.Equal(t, 1.5, e.AvgGenerationsPerTrial())
}

func TestExperiment_BestFitness_isFinalGenerationPerTrial(t *testing.T) {
	e := sampleExperiment()
	assert.Equal(t, Floats{16, 3}, e.BestFitness())
}

func TestExperiment_SuccessRate_zeroTrials(t *testing.T) {
	e := Experiment{}
	assert.Equal(t, 0.0, e.SuccessRate())
}

func TestExperiment_WriteNPZ_succeeds(t *testing.T) {
	e := sampleExperiment()
	var buf bytes.Buffer
	require.NoError(t, e.WriteNPZ(&buf))
	assert.NotEmpty(t, buf.Bytes())
}

func TestExperiment_PrintStatistics_doesNotPanic(t *testing.T) {
	e := sampleExperiment()
	assert.NotPanics(t, func() { e.PrintStatistics() })
}
