package network

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolve-go/neat/neat"
	"github.com/evolve-go/neat/neat/genetics"
)

func TestBuild_selectsVariantByNetworkType(t *testing.T) {
	opts := neat.NewDefaultOptions()
	registry := genetics.NewInnovationRegistry(0, 0)
	g, err := genetics.Genesis(0, 2, 1, opts, registry, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	opts.NetworkType = neat.FeedForwardNetwork
	solver, err := Build(g, opts)
	require.NoError(t, err)
	_, ok := solver.(*FeedforwardNetwork)
	assert.True(t, ok)

	opts.NetworkType = neat.ContinuousTimeRecurrentNetwork
	solver, err = Build(g, opts)
	require.NoError(t, err)
	_, ok = solver.(*ContinuousTimeRecurrentNetwork)
	assert.True(t, ok)
}

func TestBuild_rejectsUnknownNetworkType(t *testing.T) {
	opts := neat.NewDefaultOptions()
	registry := genetics.NewInnovationRegistry(0, 0)
	g, err := genetics.Genesis(0, 1, 1, opts, registry, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	opts.NetworkType = neat.NetworkType("bogus")
	_, err = Build(g, opts)
	assert.Error(t, err)
}
