// Package core provides the immutable, index-based undirected Graph that
// every Perfect Roman Domination routine in this module reads.
//
// A Graph G = (V,E) is built once with BuildGraph (or BuildIndexed for
// integer instances) and never changes afterwards:
//
//   - Vertex IDs are arbitrary non-empty strings, mapped to dense indices
//     0..n-1 in the order they were supplied.
//   - Neighborhoods are sorted adjacency lists ([][]int), so iterating the
//     neighbors of v costs O(deg(v)) and construction is near-linear.
//   - Self-loops and repeated edges are dropped by default; WithStrictEdges
//     turns them into errors.
//   - Every edge endpoint must exist, otherwise BuildGraph fails with an
//     error matching ErrInvalidGraph.
//
// Two API layers are offered:
//
//	// ID layer (validated, returns sentinel errors)
//	Neighbors(id) ([]string, error)
//	Degree(id) (int, error)
//	IsIsolated(id) (bool, error)
//
//	// Index layer (hot path for constructors and the oracle)
//	NeighborsAt(i) []int
//	DegreeAt(i) int
//	IsolatedAt(i) bool
//
// Labelings elsewhere in the module are slices aligned with the dense
// indices, so labeling[i] is the label of ID(i).
//
// Quick ASCII example:
//
//	  0───4───5
//	  │       │
//	  2───1───┘
//	 ╱ ╲
//	3───6
//
// is BuildIndexed(7, [][2]int{{0,4},{0,2},{1,2},{2,3},{5,1},{5,4},{6,2},{6,3}}).
package core
