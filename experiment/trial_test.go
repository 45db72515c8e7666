package experiment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/evolve-go/neat/neat/genetics"
)

func TestTrial_BestFitness_series(t *testing.T) {
	a := &genetics.Genome{Fitness: 1}
	b := &genetics.Genome{Fitness: 4}
	trial := Trial{
		Generations: Generations{
			{Id: 0, Best: a},
			{Id: 1, Best: b},
			{Id: 2},
		},
	}

	series := trial.BestFitness()
	assert.Equal(t, Floats{1, 4, 0}, series)
}

func TestTrial_Solved_and_SolvedGeneration(t *testing.T) {
	trial := Trial{
		Generations: Generations{
			{Id: 0, Solved: false},
			{Id: 1, Solved: true},
			{Id: 2, Solved: true},
		},
	}
	assert.True(t, trial.Solved())
	assert.Equal(t, 1, trial.SolvedGeneration())
}

func TestTrial_Solved_falseWhenNeverSolved(t *testing.T) {
	trial := Trial{Generations: Generations{{Id: 0}, {Id: 1}}}
	assert.False(t, trial.Solved())
	assert.Equal(t, -1, trial.SolvedGeneration())
}

func TestTrial_AvgGenerationDuration(t *testing.T) {
	trial := Trial{
		Generations: Generations{
			{Duration: 2 * time.Second},
			{Duration: 4 * time.Second},
		},
	}
	assert.Equal(t, 3*time.Second, trial.AvgGenerationDuration())
	assert.Equal(t, 6*time.Second, trial.Duration())
}

func TestTrial_AvgGenerationDuration_empty(t *testing.T) {
	trial := Trial{}
	assert.Equal(t, time.Duration(0), trial.AvgGenerationDuration())
	assert.Equal(t, time.Duration(0), trial.Duration())
}

func TestTrial_LastSpeciesCount(t *testing.T) {
	trial := Trial{Generations: Generations{{SpeciesCount: 3}, {SpeciesCount: 7}}}
	assert.Equal(t, 7, trial.LastSpeciesCount())

	empty := Trial{}
	assert.Equal(t, 0, empty.LastSpeciesCount())
}
