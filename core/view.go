// File: view.go
// Role: Derived views over an immutable Graph: dense adjacency matrix and
// structural statistics.
//
// The matrix view costs O(V²) memory and is meant for small graphs and for
// cross-checking the list representation in tests.
package core

// AdjacencyMatrix returns an n×n boolean matrix with m[i][j] == true iff
// vertices i and j are adjacent.
// Complexity: O(V² + E) time and space.
func (g *Graph) AdjacencyMatrix() [][]bool {
	n := len(g.ids)
	m := make([][]bool, n)
	for i := 0; i < n; i++ {
		m[i] = make([]bool, n)
		for _, j := range g.adj[i] {
			m[i][j] = true
		}
	}
	return m
}

// Stats computes order, size, density, degree extremes, isolated count and
// the number of connected components.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	n := len(g.ids)
	st := GraphStats{Order: n, Size: g.size}
	if n == 0 {
		return st
	}
	if n > 1 {
		st.Density = float64(2*g.size) / float64(n*(n-1))
	}

	st.MinDegree = len(g.adj[0])
	for i := 0; i < n; i++ {
		d := len(g.adj[i])
		if d < st.MinDegree {
			st.MinDegree = d
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
		if d == 0 {
			st.Isolated++
		}
	}
	st.Components = len(g.Components())

	return st
}

// Components returns the connected components as slices of dense indices.
// Components are ordered by their smallest index; members follow BFS order.
// Complexity: O(V + E).
func (g *Graph) Components() [][]int {
	n := len(g.ids)
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect component
		queue := []int{s}
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
