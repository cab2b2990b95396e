package ga

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/prdga/construct"
	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/labeling"
)

// Pair is two parents chosen for one crossover.
type Pair struct {
	A, B *Individual
}

// Selector picks parent pairs from a population.
type Selector interface {
	Select(pop Population, pairs int, r *rand.Rand) ([]Pair, error)
}

// Crossover recombines two parents into two fresh children. The parents are
// never modified.
type Crossover interface {
	Cross(a, b labeling.Labeling, r *rand.Rand) (labeling.Labeling, labeling.Labeling)
}

// Mutator perturbs a labeling. It returns l itself when nothing changed and
// a modified copy otherwise.
type Mutator interface {
	Mutate(l labeling.Labeling, r *rand.Rand) labeling.Labeling
}

// Replacer forms the next population of exactly size individuals.
type Replacer interface {
	Replace(current, children Population, size int) Population
}

// Repairer maps any labeling to a valid one.
type Repairer interface {
	Repair(g *core.Graph, l labeling.Labeling) (labeling.Labeling, error)
}

// RepairerFunc adapts a function to Repairer.
type RepairerFunc func(g *core.Graph, l labeling.Labeling) (labeling.Labeling, error)

func (f RepairerFunc) Repair(g *core.Graph, l labeling.Labeling) (labeling.Labeling, error) {
	return f(g, l)
}

// DefaultRepairer runs construct.Repair.
var DefaultRepairer Repairer = RepairerFunc(construct.Repair)

// strategies is the resolved set of operators for one run.
type strategies struct {
	selector  Selector
	crossover Crossover
	mutator   Mutator
	replacer  Replacer
	repairer  Repairer
}

// strategiesFor resolves the names in cfg. cfg must already be validated.
func strategiesFor(cfg Config) (strategies, error) {
	var s strategies

	switch cfg.Selection {
	case SelectionTournament:
		s.selector = TournamentSelector{K: cfg.TournamentSize}
	default:
		return s, fmt.Errorf("%w: selection %q", ErrInvalidConfiguration, cfg.Selection)
	}

	switch cfg.Crossover {
	case CrossoverOnePoint:
		s.crossover = OnePointCrossover{Rate: cfg.CrossoverRate}
	case CrossoverUniform:
		s.crossover = UniformCrossover{Rate: cfg.CrossoverRate}
	default:
		return s, fmt.Errorf("%w: crossover %q", ErrInvalidConfiguration, cfg.Crossover)
	}

	switch cfg.Mutation {
	case MutationRandomReset:
		s.mutator = RandomResetMutation{Rate: cfg.MutationRate}
	case MutationSwap:
		s.mutator = SwapMutation{Rate: cfg.MutationRate}
	case MutationGeneWise:
		s.mutator = GeneWiseMutation{Rate: cfg.MutationRate}
	default:
		return s, fmt.Errorf("%w: mutation %q", ErrInvalidConfiguration, cfg.Mutation)
	}

	switch cfg.Replacement {
	case ReplacementElitism:
		s.replacer = ElitismReplacement{Elite: cfg.ElitismSize}
	case ReplacementPartition:
		s.replacer = PartitionReplacement{}
	default:
		return s, fmt.Errorf("%w: replacement %q", ErrInvalidConfiguration, cfg.Replacement)
	}

	if cfg.Repair {
		s.repairer = DefaultRepairer
	}
	return s, nil
}
