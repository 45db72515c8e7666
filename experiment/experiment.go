package experiment

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sbinet/npyio/npz"
	"gonum.org/v1/gonum/mat"
)

// Experiment is a collection of trials run with the same configuration and
// random seed, useful for statistical analysis across repeated runs.
type Experiment struct {
	Id       int
	Name     string
	RandSeed int64
	Trials   []Trial

	// MaxFitnessScore normalizes EfficiencyScore's fitness term when set
	// above zero; left at zero, the raw mean fitness is used unscaled.
	MaxFitnessScore float64
}

// AvgTrialDuration returns the mean total duration across trials.
func (e *Experiment) AvgTrialDuration() time.Duration {
	if len(e.Trials) == 0 {
		return 0
	}
	var total time.Duration
	for i := range e.Trials {
		total += e.Trials[i].Duration()
	}
	return total / time.Duration(len(e.Trials))
}

// AvgGenerationDuration returns the mean per-generation duration across
// every trial.
func (e *Experiment) AvgGenerationDuration() time.Duration {
	if len(e.Trials) == 0 {
		return 0
	}
	var total time.Duration
	for i := range e.Trials {
		total += e.Trials[i].AvgGenerationDuration()
	}
	return total / time.Duration(len(e.Trials))
}

// AvgGenerationsPerTrial returns the mean number of generations run per
// trial. Trials that solved early and stopped contribute a smaller count,
// so this also serves as a convergence-speed indicator.
func (e *Experiment) AvgGenerationsPerTrial() float64 {
	if len(e.Trials) == 0 {
		return 0
	}
	total := 0.0
	for i := range e.Trials {
		total += float64(len(e.Trials[i].Generations))
	}
	return total / float64(len(e.Trials))
}

// TrialsSolved returns how many trials reported Solved() true.
func (e *Experiment) TrialsSolved() int {
	count := 0
	for i := range e.Trials {
		if e.Trials[i].Solved() {
			count++
		}
	}
	return count
}

// SuccessRate returns TrialsSolved divided by the trial count.
func (e *Experiment) SuccessRate() float64 {
	if len(e.Trials) == 0 {
		return 0
	}
	return float64(e.TrialsSolved()) / float64(len(e.Trials))
}

// BestFitness returns the final best-fitness value achieved in each trial.
func (e *Experiment) BestFitness() Floats {
	x := make(Floats, len(e.Trials))
	for i := range e.Trials {
		series := e.Trials[i].BestFitness()
		if len(series) > 0 {
			x[i] = series[len(series)-1]
		}
	}
	return x
}

// BestComplexity returns, per trial, the hidden-node count of the final
// best genome.
func (e *Experiment) BestComplexity() Floats {
	x := make(Floats, len(e.Trials))
	for i, t := range e.Trials {
		if len(t.Generations) == 0 {
			continue
		}
		last := t.Generations[len(t.Generations)-1]
		if last.Best != nil {
			x[i] = float64(last.Best.HiddenNodeCount())
		}
	}
	return x
}

// Diversity returns, per trial, the average species count across its
// generations.
func (e *Experiment) Diversity() Floats {
	x := make(Floats, len(e.Trials))
	for i, t := range e.Trials {
		counts := make(Floats, len(t.Generations))
		for j, gen := range t.Generations {
			counts[j] = float64(gen.SpeciesCount)
		}
		x[i] = counts.Mean()
	}
	return x
}

// EfficiencyScore favors runs that solve reliably, quickly (few
// generations, low per-generation duration), and with small winning
// genomes - penalizing slow, complex, or unreliable search.
func (e *Experiment) EfficiencyScore() float64 {
	meanComplexity, meanFitness := 0.0, 0.0
	count := 0.0
	for i := range e.Trials {
		t := &e.Trials[i]
		if !t.Solved() {
			continue
		}
		gen := t.Generations[t.SolvedGeneration()]
		if gen.Best != nil {
			meanComplexity += float64(gen.Best.HiddenNodeCount())
			meanFitness += gen.Best.Fitness
		}
		count++
	}
	if count == 0 {
		return 0
	}
	meanComplexity /= count
	meanFitness /= count

	fitnessScore := meanFitness
	if e.MaxFitnessScore > 0 {
		fitnessScore = fitnessScore / e.MaxFitnessScore * 100
	}

	score := e.AvgGenerationDuration().Seconds() * 1000.0 * e.AvgGenerationsPerTrial() * meanComplexity
	if score <= 0 {
		return 0
	}
	return e.SuccessRate() * fitnessScore / math.Log(score)
}

// PrintStatistics writes a human-readable summary of the experiment to
// standard output.
func (e *Experiment) PrintStatistics() {
	fmt.Printf("\nSolved %d trials from %d, success rate: %f\n", e.TrialsSolved(), len(e.Trials), e.SuccessRate())
	fmt.Printf("Random seed: %d\n", e.RandSeed)
	fmt.Printf("Average\n\tTrial duration:\t\t%s\n\tGeneration duration:\t%s\n\tGenerations/trial:\t%.1f\n",
		e.AvgTrialDuration(), e.AvgGenerationDuration(), e.AvgGenerationsPerTrial())
	fmt.Printf("\nEfficiency score:\t\t%f\n\n", e.EfficiencyScore())
}

// WriteNPZ dumps the experiment's results to an NPZ archive:
//   - trials_fitness, trials_complexity: per-trial mean/variance across
//     every generation's average species fitness and best-genome complexity
//   - trial_<i>_best_fitnesses, trial_<i>_complexity, trial_<i>_diversity:
//     the per-generation series for trial i
func (e *Experiment) WriteNPZ(w io.Writer) error {
	trialsFitness := mat.NewDense(len(e.Trials), 2, nil)
	trialsComplexity := mat.NewDense(len(e.Trials), 2, nil)
	for i, t := range e.Trials {
		fitness := make(Floats, len(t.Generations))
		complexity := make(Floats, len(t.Generations))
		for j, gen := range t.Generations {
			fitness[j] = gen.Fitness.Mean()
			complexity[j] = gen.Complexity.Mean()
		}
		trialsFitness.SetRow(i, fitness.MeanVariance())
		trialsComplexity.SetRow(i, complexity.MeanVariance())
	}

	out := npz.NewWriter(w)
	if err := out.Write("trials_fitness", trialsFitness); err != nil {
		return err
	}
	if err := out.Write("trials_complexity", trialsComplexity); err != nil {
		return err
	}

	for i, t := range e.Trials {
		diversity := make(Floats, len(t.Generations))
		complexity := make(Floats, len(t.Generations))
		for j, gen := range t.Generations {
			diversity[j] = float64(gen.SpeciesCount)
			complexity[j] = gen.Complexity.Mean()
		}
		if err := out.Write(fmt.Sprintf("trial_%d_best_fitnesses", i), t.BestFitness()); err != nil {
			return err
		}
		if err := out.Write(fmt.Sprintf("trial_%d_complexity", i), complexity); err != nil {
			return err
		}
		if err := out.Write(fmt.Sprintf("trial_%d_diversity", i), diversity); err != nil {
			return err
		}
	}
	return out.Close()
}
