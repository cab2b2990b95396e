package construct

import (
	"sort"

	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/labeling"
)

// DegreeBased builds one labeling greedily in decreasing degree order.
//
// Until every vertex is labelled, the unset vertex of maximum degree is
// taken (ties by the TieBreak option) and:
//   - if isolated, it gets 1;
//   - if no neighbor is labelled 2 or 1 or is a dominated 0, and it is
//     itself undominated, it gets 2 and every unset neighbor gets 0 and is
//     dominated;
//   - else, if undominated, it gets 1;
//   - else it keeps 0.
//
// A 2 is never placed next to a committed 0, so every 0 ends with exactly
// one neighbor labelled 2 and the result is a perfect Roman dominating
// function. Each step labels at least one unset vertex, so the loop ends.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrOptionViolation for invalid options.
//
// Complexity: O(V log V + E).
func DegreeBased(g *core.Graph, opts ...Option) (labeling.Labeling, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := newState(g)
	for _, v := range degreeOrder(g, o.TieBreak) {
		if s.labels[v] != labeling.Unset {
			continue
		}
		if g.IsolatedAt(v) {
			s.labels[v] = labeling.One
			s.dominated[v] = true
			continue
		}

		switch {
		case s.canBeTwo(v) && !s.dominated[v]:
			s.labels[v] = labeling.Two
			s.dominated[v] = true
			for _, u := range g.NeighborsAt(v) {
				if s.labels[u] == labeling.Unset {
					s.labels[u] = labeling.Zero
					s.dominated[u] = true
				}
			}
		case !s.dominated[v]:
			s.labels[v] = labeling.One
			s.dominated[v] = true
		default:
			s.labels[v] = labeling.Zero
		}
	}

	return s.labels.Clone(), nil
}

// canBeTwo reports whether no neighbor of v is labelled 2, labelled 1, or a
// dominated 0.
func (s *state) canBeTwo(v int) bool {
	for _, u := range s.g.NeighborsAt(v) {
		switch s.labels[u] {
		case labeling.Two, labeling.One:
			return false
		case labeling.Zero:
			if s.dominated[u] {
				return false
			}
		}
	}
	return true
}

// degreeOrder returns all vertex indices by decreasing degree, ties broken
// by policy. Degrees never change, so walking this order and skipping
// labelled vertices always yields the current maximum-degree unset vertex.
func degreeOrder(g *core.Graph, tb TieBreak) []int {
	n := g.Order()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		va, vb := order[a], order[b]
		da, db := g.DegreeAt(va), g.DegreeAt(vb)
		if da != db {
			return da > db
		}
		if tb == TieBreakLowestID {
			return lessID(g.ID(va), g.ID(vb))
		}
		return va < vb
	})
	return order
}
