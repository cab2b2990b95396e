package ga

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/prdga/rng"
)

// maxResample bounds how often the second tournament is redrawn when it
// returns the first parent again.
const maxResample = 16

// TournamentSelector samples K distinct individuals and keeps the one of
// lowest fitness; ties go to the earliest sampled.
//
// The two parents of a pair are always distinct individuals. When repeated
// draws keep returning the first parent, the second tournament runs over
// the population minus that parent, with K clipped to what remains.
type TournamentSelector struct {
	K int
}

// Select returns pairs parent pairs.
//
// Errors:
//   - ErrInsufficientPopulation if len(pop) < K or len(pop) < 2.
//
// Complexity: O(pairs · K) expected.
func (t TournamentSelector) Select(pop Population, pairs int, r *rand.Rand) ([]Pair, error) {
	n := len(pop)
	if n < t.K || n < 2 || t.K < 1 {
		return nil, fmt.Errorf("%w: population %d, tournament %d", ErrInsufficientPopulation, n, t.K)
	}

	out := make([]Pair, 0, pairs)
	for i := 0; i < pairs; i++ {
		a := t.tournament(pop, r)
		b := t.tournament(pop, r)
		for try := 1; b == a && try < maxResample; try++ {
			b = t.tournament(pop, r)
		}
		if b == a {
			b = t.tournamentExcluding(pop, a, r)
		}
		out = append(out, Pair{A: pop[a], B: pop[b]})
	}
	return out, nil
}

// tournament returns the index of the winner.
func (t TournamentSelector) tournament(pop Population, r *rand.Rand) int {
	best := -1
	for _, i := range rng.SampleDistinct(len(pop), t.K, r) {
		if best < 0 || better(pop[i], pop[best]) {
			best = i
		}
	}
	return best
}

// tournamentExcluding runs a tournament over every index except skip.
func (t TournamentSelector) tournamentExcluding(pop Population, skip int, r *rand.Rand) int {
	best := -1
	for _, i := range rng.SampleDistinct(len(pop)-1, t.K, r) {
		if i >= skip {
			i++
		}
		if best < 0 || better(pop[i], pop[best]) {
			best = i
		}
	}
	return best
}
