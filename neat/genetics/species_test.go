package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecies_AverageFitness(t *testing.T) {
	opts := newTestOptions()
	registry := NewInnovationRegistry(0, 0)
	rep := newTestGenome(t, 1, 1, opts, registry, 1)
	s := NewSpecies(0, rep)

	rep.Fitness = 2
	other := rep.Clone(1)
	other.Fitness = 4
	s.Members = append(s.Members, other)

	assert.Equal(t, 3.0, s.AverageFitness())
}

func TestSpecies_AverageFitness_empty(t *testing.T) {
	s := &Species{}
	assert.Equal(t, 0.0, s.AverageFitness())
}

func TestSpecies_UpdateBest_tracksImprovementAndStaleness(t *testing.T) {
	opts := newTestOptions()
	registry := NewInnovationRegistry(0, 0)
	rep := newTestGenome(t, 1, 1, opts, registry, 1)
	s := NewSpecies(0, rep)
	rep.Fitness = 1

	s.UpdateBest()
	assert.Equal(t, 1.0, s.BestFitness)
	assert.Equal(t, 0, s.Staleness)

	rep.Fitness = 1 // no improvement
	s.UpdateBest()
	assert.Equal(t, 1, s.Staleness)

	rep.Fitness = 5
	s.UpdateBest()
	assert.Equal(t, 5.0, s.BestFitness)
	assert.Equal(t, 0, s.Staleness)
}

func TestSpecies_IsStagnant(t *testing.T) {
	s := &Species{Staleness: 15}
	assert.True(t, s.IsStagnant(15))
	assert.False(t, s.IsStagnant(16))
}

func TestSpecies_Cull_keepsTopHalfByFitness(t *testing.T) {
	opts := newTestOptions()
	registry := NewInnovationRegistry(0, 0)
	rep := newTestGenome(t, 1, 1, opts, registry, 1)
	s := NewSpecies(0, rep)
	rep.Fitness = 1
	for i := 2; i <= 5; i++ {
		g := rep.Clone(i)
		g.Fitness = float64(i)
		s.Members = append(s.Members, g)
	}
	// members fitnesses: 1,2,3,4,5 -> keep top ceil(5/2)=3 -> fitness 3,4,5
	s.Cull()
	assert.Len(t, s.Members, 3)
	for _, m := range s.Members {
		assert.GreaterOrEqual(t, m.Fitness, 3.0)
	}
}

func TestSpecies_BreedingPool_returnsTopFraction(t *testing.T) {
	opts := newTestOptions()
	registry := NewInnovationRegistry(0, 0)
	rep := newTestGenome(t, 1, 1, opts, registry, 1)
	s := NewSpecies(0, rep)
	rep.Fitness = 1
	for i := 2; i <= 10; i++ {
		g := rep.Clone(i)
		g.Fitness = float64(i)
		s.Members = append(s.Members, g)
	}

	pool := s.BreedingPool(0.2)
	assert.GreaterOrEqual(t, len(pool), 1)
	for _, m := range pool {
		assert.GreaterOrEqual(t, m.Fitness, 8.0)
	}
}

func TestSpecies_TopMembers_descendingFitness(t *testing.T) {
	opts := newTestOptions()
	registry := NewInnovationRegistry(0, 0)
	rep := newTestGenome(t, 1, 1, opts, registry, 1)
	s := NewSpecies(0, rep)
	rep.Fitness = 1
	for i := 2; i <= 4; i++ {
		g := rep.Clone(i)
		g.Fitness = float64(i)
		s.Members = append(s.Members, g)
	}

	top := s.TopMembers(2)
	assert.Len(t, top, 2)
	assert.Equal(t, 4.0, top[0].Fitness)
	assert.Equal(t, 3.0, top[1].Fitness)
}

func TestSpecies_IsCompatible(t *testing.T) {
	opts := newTestOptions()
	registry := NewInnovationRegistry(0, 0)
	rep := newTestGenome(t, 2, 1, opts, registry, 1)
	s := NewSpecies(0, rep)

	same := rep.Clone(1)
	assert.True(t, s.IsCompatible(same, 3.0, opts))

	divergent := rep.Clone(2)
	for i := 0; i < 10; i++ {
		divergent.MutateAddNode(opts, registry, rand.New(rand.NewSource(int64(i))))
	}
	assert.False(t, s.IsCompatible(divergent, 0.0001, opts))
}

func TestSpecies_ReselectRepresentative_picksAMember(t *testing.T) {
	opts := newTestOptions()
	registry := NewInnovationRegistry(0, 0)
	rep := newTestGenome(t, 1, 1, opts, registry, 1)
	s := NewSpecies(0, rep)
	other := rep.Clone(1)
	s.Members = append(s.Members, other)

	s.ReselectRepresentative(rand.New(rand.NewSource(1)))
	assert.Contains(t, s.Members, s.Representative)
}
