package ga

import (
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarizes one generation's population.
type GenerationStats struct {
	Generation    int     `json:"generation"`
	BestFitness   int     `json:"best_fitness"`
	MeanFitness   float64 `json:"mean_fitness"`
	StdDevFitness float64 `json:"stddev_fitness"`
	ValidityRate  float64 `json:"validity_rate"`
	BestValid     bool    `json:"best_valid"`

	// Best is the generation's best individual.
	Best *Individual `json:"-"`
}

// Summarize computes the statistics of pop for generation gen.
// The standard deviation is the population one; it is 0 for fewer than two
// individuals.
func Summarize(gen int, pop Population) GenerationStats {
	s := GenerationStats{Generation: gen}
	if len(pop) == 0 {
		return s
	}
	best := pop.Best()
	s.Best = best
	s.BestFitness = best.Fitness()
	s.BestValid = best.Valid()
	s.ValidityRate = float64(pop.ValidCount()) / float64(len(pop))

	xs := pop.Fitnesses()
	s.MeanFitness = stat.Mean(xs, nil)
	if len(xs) > 1 {
		s.StdDevFitness = stat.PopStdDev(xs, nil)
	}
	return s
}
