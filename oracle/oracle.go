// Package oracle decides whether a labeling is a Perfect Roman Dominating
// Function on a graph and scores it for minimization.
//
// Three escalating checks are provided:
//
//   - CheckPerfectCount: every 0-labelled vertex has exactly one neighbor labelled 2.
//   - CheckPerfectDomination: perfect count AND no vertex left undominated.
//   - CheckPerfectDominationBatch: the full check applied to each labeling, order-preserving.
//
// Fitness is weight plus a penalty of |V|·PenaltyFactor for labelings that
// fail the full check; lower is better. With PenaltyFactor ≥ 2 every invalid
// labeling scores above every valid one, since a valid weight never exceeds 2|V|.
//
// None of the checks fail on a well-formed labeling: invalid labelings are
// penalized, not rejected. Malformed input (wrong length, label outside
// {0,1,2}) makes the boolean checks return false; Validate reports why.
package oracle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/labeling"
)

// PenaltyFactor multiplies |V| to form the penalty added to invalid labelings.
const PenaltyFactor = 5

// MinPenaltyFactor is the smallest factor that keeps every invalid labeling
// above every valid one.
const MinPenaltyFactor = 2

// Sentinel errors.
var (
	// ErrLabelingLength indicates len(labeling) != |V|.
	ErrLabelingLength = errors.New("oracle: labeling length differs from graph order")

	// ErrLabelOutOfRange indicates a label outside {0,1,2}.
	ErrLabelOutOfRange = errors.New("oracle: label outside {0,1,2}")

	// ErrPenaltyTooSmall indicates a penalty factor below MinPenaltyFactor.
	ErrPenaltyTooSmall = errors.New("oracle: penalty factor below 2")

	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("oracle: graph is nil")
)

// Validate checks that l is structurally a labeling of g.
//
// Errors:
//   - ErrGraphNil, ErrLabelingLength, ErrLabelOutOfRange.
//
// Complexity: O(V).
func Validate(g *core.Graph, l labeling.Labeling) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(l) != g.Order() {
		return fmt.Errorf("%w: got %d, want %d", ErrLabelingLength, len(l), g.Order())
	}
	for i, x := range l {
		if !x.Valid() {
			return fmt.Errorf("%w: vertex %q has %d", ErrLabelOutOfRange, g.ID(i), x)
		}
	}
	return nil
}

// twoNeighbors counts the neighbors of v labelled 2.
func twoNeighbors(g *core.Graph, l labeling.Labeling, v int) int {
	var c int
	for _, u := range g.NeighborsAt(v) {
		if l[u] == labeling.Two {
			c++
		}
	}
	return c
}

// CheckPerfectCount reports whether every vertex labelled 0 has exactly one
// neighbor labelled 2. Malformed labelings yield false.
//
// Complexity: O(V + E).
func CheckPerfectCount(g *core.Graph, l labeling.Labeling) bool {
	if Validate(g, l) != nil {
		return false
	}
	for v, x := range l {
		if x == labeling.Zero && twoNeighbors(g, l, v) != 1 {
			return false
		}
	}
	return true
}

// CheckPerfectDomination reports whether l is a Perfect Roman Dominating
// Function of g: the perfect-count condition holds and every vertex is
// labelled 1 or 2 or has a neighbor labelled 2. The function is pure, so
// repeated calls on the same input agree.
//
// Complexity: O(V + E).
func CheckPerfectDomination(g *core.Graph, l labeling.Labeling) bool {
	if !CheckPerfectCount(g, l) {
		return false
	}
	for v, x := range l {
		if x == labeling.One || x == labeling.Two {
			continue
		}
		if twoNeighbors(g, l, v) == 0 {
			return false
		}
	}
	return true
}

// CheckPerfectDominationBatch applies CheckPerfectDomination to each
// labeling independently and returns one result per input, in order.
//
// Complexity: O(k·(V + E)) for k labelings.
func CheckPerfectDominationBatch(g *core.Graph, ls []labeling.Labeling) []bool {
	out := make([]bool, len(ls))
	for i, l := range ls {
		out[i] = CheckPerfectDomination(g, l)
	}
	return out
}

// Weight returns the sum of labels.
func Weight(l labeling.Labeling) int { return l.Weight() }

// Fitness returns Weight(l) plus |V|·PenaltyFactor when l is not a valid PRD.
func Fitness(g *core.Graph, l labeling.Labeling) int {
	f, _ := Evaluate(g, l)
	return f
}

// Evaluate returns the fitness and validity of l in a single pass over the
// checks, using PenaltyFactor.
func Evaluate(g *core.Graph, l labeling.Labeling) (fitness int, valid bool) {
	valid = CheckPerfectDomination(g, l)
	fitness = l.Weight()
	if !valid {
		fitness += len(l) * PenaltyFactor
	}
	return fitness, valid
}

// EvaluateWithPenalty is Evaluate with a caller-supplied penalty factor.
//
// Errors:
//   - ErrPenaltyTooSmall if factor < MinPenaltyFactor.
func EvaluateWithPenalty(g *core.Graph, l labeling.Labeling, factor int) (int, bool, error) {
	if factor < MinPenaltyFactor {
		return 0, false, fmt.Errorf("%w: %d", ErrPenaltyTooSmall, factor)
	}
	valid := CheckPerfectDomination(g, l)
	fitness := l.Weight()
	if !valid {
		fitness += len(l) * factor
	}
	return fitness, valid, nil
}
