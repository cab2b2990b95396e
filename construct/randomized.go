package construct

import (
	"math/rand"

	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/labeling"
	"github.com/katalvlaran/prdga/rng"
)

// state is the scratch space of one construction: labels plus the
// transient dominated flags. It is reset, not reallocated, between seeds.
type state struct {
	g         *core.Graph
	labels    labeling.Labeling
	dominated []bool
}

func newState(g *core.Graph) *state {
	n := g.Order()
	return &state{g: g, labels: labeling.New(n), dominated: make([]bool, n)}
}

func (s *state) reset() {
	s.labels.Reset()
	for i := range s.dominated {
		s.dominated[i] = false
	}
}

// hasTwoNeighbor reports whether some neighbor of v is labelled 2.
func (s *state) hasTwoNeighbor(v int) bool {
	for _, u := range s.g.NeighborsAt(v) {
		if s.labels[u] == labeling.Two {
			return true
		}
	}
	return false
}

// free reports whether v is unset and undominated.
func (s *state) free(v int) bool {
	return s.labels[v] == labeling.Unset && !s.dominated[v]
}

// Randomized returns min(count, |V|) labelings, one per seed vertex drawn
// from a shuffled vertex order. count <= 0 means |V|.
//
// Per seed:
//  1. reset labels and dominated flags;
//  2. an isolated seed gets 1 and skips steps 3–4;
//  3. otherwise the seed gets 2, and each free neighbor gets 0 and is dominated;
//  4. free neighbors of those neighbors get a tentative 0, not yet dominated;
//  5. cleanup A: a tentative 0 with a neighbor labelled 2 becomes dominated;
//  6. cleanup B: anything still unset or tentatively 0 without a neighbor
//     labelled 2 becomes 1;
//  7. the labeling is emitted.
//
// Every emitted labeling contains a single 2 (or none, for an isolated seed)
// and is therefore a perfect Roman dominating function.
//
// Errors:
//   - ErrGraphNil if g is nil.
//
// Complexity: O(count·(V + E)).
func Randomized(g *core.Graph, r *rand.Rand, count int) ([]labeling.Labeling, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	if count <= 0 || count > n {
		count = n
	}

	order := rng.Perm(n, r)
	s := newState(g)
	out := make([]labeling.Labeling, 0, count)
	for _, seed := range order[:count] {
		s.reset()
		s.seedFrom(seed)
		s.cleanup()
		out = append(out, s.labels.Clone())
	}
	return out, nil
}

// seedFrom performs steps 2–4 for one seed vertex.
func (s *state) seedFrom(seed int) {
	if s.g.IsolatedAt(seed) {
		s.labels[seed] = labeling.One
		s.dominated[seed] = true
		return
	}

	s.labels[seed] = labeling.Two
	s.dominated[seed] = true

	// Step 3 completes before step 4 so that no direct neighbor of the seed
	// is mistaken for a two-hop vertex.
	var ring []int
	for _, u := range s.g.NeighborsAt(seed) {
		if s.free(u) {
			s.labels[u] = labeling.Zero
			s.dominated[u] = true
			ring = append(ring, u)
		}
	}
	for _, u := range ring {
		for _, w := range s.g.NeighborsAt(u) {
			if s.free(w) {
				s.labels[w] = labeling.Zero
			}
		}
	}
}

// cleanup performs passes A and B.
func (s *state) cleanup() {
	n := len(s.labels)
	for v := 0; v < n; v++ {
		if s.labels[v] == labeling.Zero && !s.dominated[v] && s.hasTwoNeighbor(v) {
			s.dominated[v] = true
		}
	}
	for v := 0; v < n; v++ {
		pending := s.labels[v] == labeling.Unset || (s.labels[v] == labeling.Zero && !s.dominated[v])
		if pending && !s.hasTwoNeighbor(v) {
			s.labels[v] = labeling.One
			s.dominated[v] = true
		}
	}
}

// RandomLabeling returns a labeling of length n with each label drawn
// uniformly from {0,1,2}. It is used to pad a population when the
// constructors yield fewer labelings than requested.
func RandomLabeling(n int, r *rand.Rand) labeling.Labeling {
	if r == nil {
		r = rng.FromSeed(0)
	}
	l := make(labeling.Labeling, n)
	for i := range l {
		l[i] = labeling.Label(r.Intn(3))
	}
	return l
}
