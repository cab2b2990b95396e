// File: build.go
// Role: BuildGraph, the single constructor of Graph.
//
// Determinism:
//   - Dense indices follow the order of the vertices argument.
//   - Every adjacency list is sorted ascending by index.
//
// Policy:
//   - Unknown endpoints, empty and duplicate IDs are always rejected.
//   - Self-loops and repeated edges are dropped unless WithStrictEdges is set.
package core

import (
	"fmt"
	"sort"
)

// BuildGraph validates vertices and edges and returns an immutable Graph.
//
// Implementation:
//   - Stage 1: Register vertex IDs, assigning dense indices in input order.
//   - Stage 2: Resolve each edge's endpoints to indices; reject unknown ones.
//   - Stage 3: Drop (or reject, if strict) self-loops and duplicate pairs.
//   - Stage 4: Mirror each edge into both adjacency lists and sort them.
//
// Errors:
//   - ErrInvalidGraph wrapping ErrEmptyVertexID, ErrDuplicateVertex,
//     ErrVertexNotFound, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(V + E log Δ), Space O(V + E).
func BuildGraph(vertices []string, edges []Edge, opts ...Option) (*Graph, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	n := len(vertices)
	g := &Graph{
		ids:   make([]string, n),
		index: make(map[string]int, n),
		adj:   make([][]int, n),
	}

	var (
		i  int
		id string
		ok bool
	)
	for i, id = range vertices {
		if id == "" {
			return nil, fmt.Errorf("%w: %w at position %d", ErrInvalidGraph, ErrEmptyVertexID, i)
		}
		if _, ok = g.index[id]; ok {
			return nil, fmt.Errorf("%w: %w %q", ErrInvalidGraph, ErrDuplicateVertex, id)
		}
		g.ids[i] = id
		g.index[id] = i
	}

	// seen holds normalized (lo,hi) pairs to detect repeated edges.
	seen := make(map[[2]int]struct{}, len(edges))
	var u, v int
	for _, e := range edges {
		if u, ok = g.index[e.From]; !ok {
			return nil, fmt.Errorf("%w: edge (%q,%q): %w %q", ErrInvalidGraph, e.From, e.To, ErrVertexNotFound, e.From)
		}
		if v, ok = g.index[e.To]; !ok {
			return nil, fmt.Errorf("%w: edge (%q,%q): %w %q", ErrInvalidGraph, e.From, e.To, ErrVertexNotFound, e.To)
		}
		if u == v {
			if o.strict {
				return nil, fmt.Errorf("%w: %w at %q", ErrInvalidGraph, ErrLoopNotAllowed, e.From)
			}
			continue
		}
		key := [2]int{u, v}
		if u > v {
			key = [2]int{v, u}
		}
		if _, ok = seen[key]; ok {
			if o.strict {
				return nil, fmt.Errorf("%w: %w (%q,%q)", ErrInvalidGraph, ErrMultiEdgeNotAllowed, e.From, e.To)
			}
			continue
		}
		seen[key] = struct{}{}
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
		g.size++
	}

	for i = range g.adj {
		sort.Ints(g.adj[i])
	}

	return g, nil
}

// BuildIndexed builds a graph over the vertices "0".."n-1" from integer
// edge pairs, the shape produced by edge-list instance files.
//
// Errors:
//   - ErrInvalidGraph (see BuildGraph); negative n yields an empty graph.
func BuildIndexed(n int, edges [][2]int, opts ...Option) (*Graph, error) {
	if n < 0 {
		n = 0
	}
	vertices := make([]string, n)
	for i := 0; i < n; i++ {
		vertices[i] = fmt.Sprint(i)
	}
	es := make([]Edge, len(edges))
	for i, e := range edges {
		es[i] = Edge{From: fmt.Sprint(e[0]), To: fmt.Sprint(e[1])}
	}

	return BuildGraph(vertices, es, opts...)
}
