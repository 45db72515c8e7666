package genetics

import (
	"math/rand"
	"testing"

	"github.com/evolve-go/neat/neat"
)

func newTestOptions() *neat.Options {
	opts := neat.NewDefaultOptions()
	opts.PopulationSize = 10
	return opts
}

func newTestGenome(t *testing.T, inputSize, outputSize int, opts *neat.Options, registry *InnovationRegistry, seed int64) *Genome {
	t.Helper()
	g, err := Genesis(0, inputSize, outputSize, opts, registry, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("genesis failed: %s", err)
	}
	return g
}
