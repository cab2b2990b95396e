package construct

import (
	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/labeling"
)

// dominance tracks, per vertex, 1 for its own positive label plus the
// number of neighbors labelled 2.
type dominance struct {
	g      *core.Graph
	labels labeling.Labeling
	count  []int
}

func newDominance(g *core.Graph, l labeling.Labeling) *dominance {
	d := &dominance{g: g, labels: l, count: make([]int, len(l))}
	for v, x := range l {
		switch x {
		case labeling.One:
			d.count[v]++
		case labeling.Two:
			d.count[v]++
			for _, u := range g.NeighborsAt(v) {
				d.count[u]++
			}
		}
	}
	return d
}

// Repair returns a valid perfect Roman dominating labeling derived from l,
// leaving l untouched. Labels outside {0,1,2} are treated as 0.
//
// Implementation:
//   - Stage 1: ReduceWeight on the input.
//   - Stage 2: every 0 not dominated by exactly one 2 is fixed: it becomes 2
//     when it is undominated and no neighbor is a dominated 0, else 1.
//   - Stage 3: ReduceWeight again.
//
// After stage 2 every 0 has exactly one neighbor labelled 2, and
// ReduceWeight preserves that, so the result always passes the oracle.
//
// Errors:
//   - ErrGraphNil if g is nil.
//
// Complexity: O(V + E).
func Repair(g *core.Graph, l labeling.Labeling) (labeling.Labeling, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := make(labeling.Labeling, g.Order())
	for i := range out {
		if i < len(l) && l[i].Valid() {
			out[i] = l[i]
		}
	}

	d := newDominance(g, out)
	d.reduce()
	for v, x := range d.labels {
		if x != labeling.Zero || d.count[v] == 1 {
			continue
		}
		if d.count[v] == 0 && !d.hasDominatedZeroNeighbor(v) {
			d.labels[v] = labeling.Two
			d.count[v]++
			for _, u := range g.NeighborsAt(v) {
				d.count[u]++
			}
			continue
		}
		d.labels[v] = labeling.One
		d.count[v]++
	}
	d.reduce()

	return d.labels, nil
}

// ReduceWeight lowers the weight of a valid labeling without breaking it:
// a 2 that is the only dominator of no 0 becomes 1, then a 1 adjacent to
// exactly one 2 becomes 0. l is not modified.
//
// Errors:
//   - ErrGraphNil if g is nil.
//
// Complexity: O(V + E).
func ReduceWeight(g *core.Graph, l labeling.Labeling) (labeling.Labeling, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	d := newDominance(g, l.Clone())
	d.reduce()
	return d.labels, nil
}

func (d *dominance) hasDominatedZeroNeighbor(v int) bool {
	for _, u := range d.g.NeighborsAt(v) {
		if d.labels[u] == labeling.Zero && d.count[u] > 0 {
			return true
		}
	}
	return false
}

func (d *dominance) reduce() {
	for v, x := range d.labels {
		if x != labeling.Two {
			continue
		}
		safe := true
		for _, u := range d.g.NeighborsAt(v) {
			if d.labels[u] == labeling.Zero && d.count[u] == 1 {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		d.labels[v] = labeling.One
		for _, u := range d.g.NeighborsAt(v) {
			d.count[u]--
		}
	}

	for v, x := range d.labels {
		if x == labeling.One && d.count[v] == 2 {
			d.labels[v] = labeling.Zero
			d.count[v]--
		}
	}
}
