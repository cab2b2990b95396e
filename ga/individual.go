package ga

import (
	"encoding/json"
	"sort"

	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/labeling"
	"github.com/katalvlaran/prdga/oracle"
)

// Individual is a labeling with its derived fitness and validity.
// The derived fields are computed once, at construction; the labeling must
// be treated as read-only afterwards.
type Individual struct {
	labeling labeling.Labeling
	fitness  int
	valid    bool
}

// NewIndividual scores l against g with the default penalty factor.
func NewIndividual(g *core.Graph, l labeling.Labeling) *Individual {
	f, ok := oracle.Evaluate(g, l)
	return &Individual{labeling: l, fitness: f, valid: ok}
}

// scorer evaluates labelings with a fixed penalty factor.
type scorer struct {
	g       *core.Graph
	penalty int
}

func (s scorer) score(l labeling.Labeling) *Individual {
	// The factor was validated with the config, so the error is unreachable.
	f, ok, _ := oracle.EvaluateWithPenalty(s.g, l, s.penalty)
	return &Individual{labeling: l, fitness: f, valid: ok}
}

// Labeling returns the individual's labeling. Do not modify it.
func (ind *Individual) Labeling() labeling.Labeling { return ind.labeling }

// Fitness returns weight plus penalty; lower is better.
func (ind *Individual) Fitness() int { return ind.fitness }

// Valid reports whether the labeling is a perfect Roman dominating function.
func (ind *Individual) Valid() bool { return ind.valid }

// Weight returns the sum of labels.
func (ind *Individual) Weight() int { return ind.labeling.Weight() }

func (ind *Individual) String() string {
	return ind.labeling.String()
}

// MarshalJSON encodes the labeling in compact form with its score.
func (ind *Individual) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Labeling string `json:"labeling"`
		Weight   int    `json:"weight"`
		Fitness  int    `json:"fitness"`
		Valid    bool   `json:"valid"`
	}{ind.labeling.String(), ind.Weight(), ind.fitness, ind.valid})
}

// better reports whether a strictly beats b.
func better(a, b *Individual) bool { return a.fitness < b.fitness }

// Population is an ordered collection of individuals.
type Population []*Individual

// Len returns the number of individuals.
func (p Population) Len() int { return len(p) }

// Best returns the first individual of minimum fitness, or nil if empty.
func (p Population) Best() *Individual {
	var best *Individual
	for _, ind := range p {
		if best == nil || better(ind, best) {
			best = ind
		}
	}
	return best
}

// Sorted returns a copy ordered by ascending fitness; equal fitness keeps
// the original order.
func (p Population) Sorted() Population {
	out := make(Population, len(p))
	copy(out, p)
	sort.SliceStable(out, func(i, j int) bool { return better(out[i], out[j]) })
	return out
}

// ValidCount returns how many individuals are valid.
func (p Population) ValidCount() int {
	var c int
	for _, ind := range p {
		if ind.valid {
			c++
		}
	}
	return c
}

// Fitnesses returns the fitness values in population order.
func (p Population) Fitnesses() []float64 {
	out := make([]float64, len(p))
	for i, ind := range p {
		out[i] = float64(ind.fitness)
	}
	return out
}
