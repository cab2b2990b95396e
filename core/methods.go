// File: methods.go
// Role: Read-only queries by vertex ID and by dense index.
//
// Determinism:
//   - Vertices() returns IDs in build order (dense index order).
//   - Neighbors()/NeighborsAt() return neighbors in ascending index order.
//
// Concurrency:
//   - Graph is immutable; all methods are safe for concurrent use.
//
// Policy:
//   - ID-based methods validate and return sentinel errors.
//   - Index-based methods are the hot path used by constructors and the
//     oracle; they do not bounds-check beyond Go's own slice checks.
package core

// Order returns |V|.
// Complexity: O(1).
func (g *Graph) Order() int { return len(g.ids) }

// Size returns |E| (distinct undirected edges, loops excluded).
// Complexity: O(1).
func (g *Graph) Size() int { return g.size }

// Vertices returns a copy of the vertex IDs in dense index order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)
	return out
}

// HasVertex reports whether id is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Index returns the dense index of id.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if id is not a vertex.
//
// Complexity: O(1).
func (g *Graph) Index(id string) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}
	i, ok := g.index[id]
	if !ok {
		return -1, ErrVertexNotFound
	}
	return i, nil
}

// ID returns the vertex ID stored at dense index i.
// Complexity: O(1).
func (g *Graph) ID(i int) string { return g.ids[i] }

// Neighbors returns the IDs adjacent to id in ascending index order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	i, err := g.Index(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(g.adj[i]))
	for k, j := range g.adj[i] {
		out[k] = g.ids[j]
	}
	return out, nil
}

// Degree returns the number of distinct neighbors of id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	i, err := g.Index(id)
	if err != nil {
		return 0, err
	}
	return len(g.adj[i]), nil
}

// IsIsolated reports whether id has no neighbors.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) IsIsolated(id string) (bool, error) {
	d, err := g.Degree(id)
	if err != nil {
		return false, err
	}
	return d == 0, nil
}

// NeighborsAt returns the neighbor indices of vertex i, ascending.
// The returned slice is shared with the graph and must not be modified.
// Complexity: O(1).
func (g *Graph) NeighborsAt(i int) []int { return g.adj[i] }

// DegreeAt returns the degree of vertex i.
// Complexity: O(1).
func (g *Graph) DegreeAt(i int) int { return len(g.adj[i]) }

// IsolatedAt reports whether vertex i has degree 0.
// Complexity: O(1).
func (g *Graph) IsolatedAt(i int) bool { return len(g.adj[i]) == 0 }

// Edges returns every edge once, as (lower index, higher index) ID pairs,
// ordered by the lower endpoint's index then the higher one's.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.size)
	for i, list := range g.adj {
		for _, j := range list {
			if j > i {
				out = append(out, Edge{From: g.ids[i], To: g.ids[j]})
			}
		}
	}
	return out
}
