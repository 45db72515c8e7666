package genetics

import (
	"context"
	"math"
	"math/rand"
	"sync"

	"github.com/pkg/errors"

	"github.com/evolve-go/neat/neat"
)

// FitnessFunc is the user-supplied collaborator: a pure function from genome
// to real-valued fitness, conventionally non-negative. Higher is better. A
// fitness function that panics is a programmer error on the caller's part -
// the evolution loop does not catch or recover from it.
type FitnessFunc func(*Genome) float64

// Population owns every piece of mutable evolutionary state for one run: the
// species list, the generation counter, the shared RNG, the Innovation
// Registry, the Speciation Manager, the global best genome and its fitness,
// and the environment descriptor. All of it is exclusively mutated from the
// orchestrating goroutine; parallel fitness evaluation never touches it.
type Population struct {
	Species    []*Species
	Generation int

	RNG        *rand.Rand
	Innovation *InnovationRegistry
	Speciation *SpeciationManager

	BestGenome  *Genome
	BestFitness float64

	InputSize  int
	OutputSize int

	Options *neat.Options

	nextGenomeId int
}

// NewPopulation builds one genesis template genome and populates a single
// initial species with opts.PopulationSize clones of it, each subjected to
// zero, one, or two mutations.
func NewPopulation(opts *neat.Options, inputSize, outputSize int, seed int64) (*Population, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if inputSize <= 0 || outputSize <= 0 {
		return nil, errors.Wrapf(neat.ErrInvalidParameter, "population requires positive input/output size, got %d/%d", inputSize, outputSize)
	}

	p := &Population{
		RNG:        rand.New(rand.NewSource(seed)),
		Innovation: NewInnovationRegistry(0, 0),
		Speciation: NewSpeciationManager(opts.InitialCompatibilityThreshold, opts.TargetSpeciesCount),
		InputSize:  inputSize,
		OutputSize: outputSize,
		Options:    opts,
	}

	template, err := Genesis(p.newGenomeId(), inputSize, outputSize, opts, p.Innovation, p.RNG)
	if err != nil {
		return nil, err
	}

	species := NewSpecies(p.Speciation.NextSpeciesId(), template)
	species.Members = species.Members[:0]

	for i := 0; i < opts.PopulationSize; i++ {
		clone := template.Clone(p.newGenomeId())
		mutations := p.RNG.Intn(3) // 0, 1, or 2
		for m := 0; m < mutations; m++ {
			clone.Mutate(opts, p.Innovation, p.RNG)
		}
		species.Members = append(species.Members, clone)
	}
	species.Representative = species.Members[p.RNG.Intn(len(species.Members))]

	p.Species = []*Species{species}
	return p, nil
}

func (p *Population) newGenomeId() int {
	id := p.nextGenomeId
	p.nextGenomeId++
	return id
}

// Evaluate assigns fn(genome), adjusted by the genome's own parsimony
// penalty, to every genome's Fitness field. Evaluation order across genomes
// is unobservable and unspecified.
func (p *Population) Evaluate(fn FitnessFunc) {
	for _, s := range p.Species {
		for _, g := range s.Members {
			raw := fn(g)
			g.Fitness = g.ApplyParsimonyPenalty(raw, p.Options)
		}
	}
}

// EvaluateParallel is the data-parallel counterpart to Evaluate: it invokes
// fn on disjoint genomes from a bounded pool of workers goroutines, each
// writing only its own genome's Fitness field. It never touches the RNG, the
// Innovation Registry, or the Speciation Manager, all of which remain
// exclusively owned by the orchestrating goroutine. Canceling ctx stops
// dispatch of further genomes and returns ctx.Err(); in-flight calls to fn
// are not interrupted.
func (p *Population) EvaluateParallel(ctx context.Context, fn FitnessFunc, workers int) error {
	if workers <= 0 {
		workers = 1
	}

	var all []*Genome
	for _, s := range p.Species {
		all = append(all, s.Members...)
	}

	jobs := make(chan *Genome)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range jobs {
				raw := fn(g)
				g.Fitness = g.ApplyParsimonyPenalty(raw, p.Options)
			}
		}()
	}

dispatch:
	for _, g := range all {
		select {
		case jobs <- g:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

// Evolve performs one atomic generation step: update species statistics,
// compute adjusted fitness, cull stagnant species, compute offspring quotas
// for the surviving species, breed the next generation (elitism, then crossover/mutation), top up any
// shortfall, and respeciate the offspring against a fresh set of
// representatives. Population size is exactly Options.PopulationSize and the
// species list is non-empty at the end of every call.
func (p *Population) Evolve() error {
	p.Generation++
	opts := p.Options

	for _, s := range p.Species {
		s.UpdateBest()
		if s.BestGenome != nil && s.BestFitness > p.BestFitness {
			p.BestFitness = s.BestFitness
			p.BestGenome = s.BestGenome
		}
	}

	totalAdjusted := 0.0
	for _, s := range p.Species {
		size := len(s.Members)
		for _, g := range s.Members {
			g.AdjustedFitness = g.Fitness / float64(size)
			totalAdjusted += g.AdjustedFitness
		}
	}

	p.removeStagnantSpecies(opts.StagnationLimit)

	offspringCounts := p.computeOffspringCounts(totalAdjusted)

	nextGen := make([]*Genome, 0, opts.PopulationSize)
	nextGen = p.applyElitism(nextGen)
	nextGen = p.breed(nextGen, offspringCounts)
	nextGen = p.topUp(nextGen)

	return p.respeciate(nextGen)
}

// removeStagnantSpecies drops species whose Staleness has reached
// stagnationLimit, except that at least one species is always kept - the
// least stale of the stagnant ones survives if every species would otherwise
// be removed.
func (p *Population) removeStagnantSpecies(stagnationLimit int) {
	var survivors []*Species
	for _, s := range p.Species {
		if !s.IsStagnant(stagnationLimit) {
			survivors = append(survivors, s)
		}
	}
	if len(survivors) == 0 && len(p.Species) > 0 {
		best := p.Species[0]
		for _, s := range p.Species[1:] {
			if s.Staleness < best.Staleness {
				best = s
			}
		}
		survivors = []*Species{best}
	}
	p.Species = survivors
}

// computeOffspringCounts returns, per surviving species (in p.Species
// order), round(species adjusted-fitness sum / totalAdjusted *
// PopulationSize). When totalAdjusted is zero, offspring are distributed
// evenly across species instead.
func (p *Population) computeOffspringCounts(totalAdjusted float64) []int {
	counts := make([]int, len(p.Species))
	if totalAdjusted <= 0 {
		even := p.Options.PopulationSize / maxInt(len(p.Species), 1)
		for i := range counts {
			counts[i] = even
		}
		return counts
	}
	for i, s := range p.Species {
		sum := 0.0
		for _, g := range s.Members {
			sum += g.AdjustedFitness
		}
		counts[i] = int(math.Round(sum / totalAdjusted * float64(p.Options.PopulationSize)))
	}
	return counts
}

// applyElitism copies the top Options.Elitism members of every species with
// at least Options.Elitism members directly into nextGen, unmutated, up to
// the population cap. A no-op entirely when Options.SpeciesElitism is false.
func (p *Population) applyElitism(nextGen []*Genome) []*Genome {
	if !p.Options.SpeciesElitism {
		return nextGen
	}
	capLimit := p.Options.PopulationSize
	for _, s := range p.Species {
		if len(nextGen) >= capLimit {
			break
		}
		if len(s.Members) < p.Options.Elitism {
			continue
		}
		for _, elite := range s.TopMembers(p.Options.Elitism) {
			if len(nextGen) >= capLimit {
				break
			}
			nextGen = append(nextGen, elite.Clone(p.newGenomeId()))
		}
	}
	return nextGen
}

// breed produces offspringCounts[i] children for species p.Species[i] from
// its breeding pool (the top ceil(size*SurvivalThreshold) members), via
// crossover (probability Options.CrossoverRate, when the pool has at least
// two members) or cloning, each mutated before joining nextGen. Breeding
// stops early once the population cap is reached.
func (p *Population) breed(nextGen []*Genome, offspringCounts []int) []*Genome {
	capLimit := p.Options.PopulationSize
	for i, s := range p.Species {
		pool := s.BreedingPool(p.Options.SurvivalThreshold)
		for n := 0; n < offspringCounts[i]; n++ {
			if len(nextGen) >= capLimit {
				return nextGen
			}
			var child *Genome
			if len(pool) >= 2 && p.RNG.Float64() < p.Options.CrossoverRate {
				a := pool[p.RNG.Intn(len(pool))]
				b := pool[p.RNG.Intn(len(pool))]
				child = Crossover(p.newGenomeId(), a, b, p.RNG)
			} else {
				parent := pool[p.RNG.Intn(len(pool))]
				child = parent.Clone(p.newGenomeId())
			}
			child.Mutate(p.Options, p.Innovation, p.RNG)
			nextGen = append(nextGen, child)
		}
	}
	return nextGen
}

// topUp fills any shortfall below PopulationSize with mutated clones of the
// global best genome, or of a freshly generated genesis template if no best
// has been recorded yet (e.g. generation 1 with all-zero fitness).
func (p *Population) topUp(nextGen []*Genome) []*Genome {
	for len(nextGen) < p.Options.PopulationSize {
		var source *Genome
		if p.BestGenome != nil {
			source = p.BestGenome
		} else {
			// Genesis only fails on invalid input/output sizes, already
			// validated by NewPopulation, so the error is unreachable here.
			template, _ := Genesis(p.newGenomeId(), p.InputSize, p.OutputSize, p.Options, p.Innovation, p.RNG)
			source = template
		}
		clone := source.Clone(p.newGenomeId())
		clone.Mutate(p.Options, p.Innovation, p.RNG)
		nextGen = append(nextGen, clone)
	}
	return nextGen
}

// respeciate clears every species' member list, keeps (with a freshly
// reselected representative) only those species that had members before
// clearing, places each offspring into the first compatible surviving
// species or a newly created one, drops any species left empty, and adjusts
// the compatibility threshold toward the target species count.
func (p *Population) respeciate(offspring []*Genome) error {
	var survivors []*Species
	for _, s := range p.Species {
		if len(s.Members) == 0 {
			continue
		}
		s.ReselectRepresentative(p.RNG)
		s.Members = s.Members[:0]
		survivors = append(survivors, s)
	}
	p.Species = survivors

	for _, g := range offspring {
		placed := false
		for _, s := range p.Species {
			if s.IsCompatible(g, p.Speciation.Threshold, p.Options) {
				s.Members = append(s.Members, g)
				placed = true
				break
			}
		}
		if !placed {
			newSpecies := NewSpecies(p.Speciation.NextSpeciesId(), g)
			p.Species = append(p.Species, newSpecies)
		}
	}

	var nonEmpty []*Species
	for _, s := range p.Species {
		if len(s.Members) > 0 {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) == 0 {
		return errors.New("respeciation produced no species for a non-empty offspring set")
	}
	p.Species = nonEmpty

	p.Speciation.AdjustThreshold(len(p.Species))
	return nil
}
