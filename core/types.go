// Package core defines the immutable Graph used by every PRD routine:
// vertex IDs are mapped once to dense indices 0..n-1 and neighborhoods are
// stored as sorted adjacency lists, giving O(degree) neighbor iteration.
//
// This file declares Edge, Graph, Option, the sentinel errors, and the
// option constructors.
//
// Errors:
//
//	ErrInvalidGraph     - umbrella for every BuildGraph rejection.
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrDuplicateVertex  - the same vertex ID was listed twice.
//	ErrVertexNotFound   - an edge endpoint or a query references an unknown vertex.
//	ErrLoopNotAllowed   - self-loop under WithStrictEdges.
//	ErrMultiEdgeNotAllowed - repeated edge under WithStrictEdges.
package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidGraph wraps every construction failure; test with errors.Is.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrEmptyVertexID indicates that a vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that a vertex ID appears more than once.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop when strict edges are enabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a repeated edge when strict edges are enabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an unordered pair of vertex IDs.
type Edge struct {
	From string
	To   string
}

// E is shorthand for Edge{From: u, To: v}.
func E(u, v string) Edge { return Edge{From: u, To: v} }

// Option configures BuildGraph.
type Option func(*buildOptions)

type buildOptions struct {
	strict bool
}

// WithStrictEdges makes BuildGraph reject self-loops and repeated edges
// instead of silently dropping them.
func WithStrictEdges() Option {
	return func(o *buildOptions) { o.strict = true }
}

// Graph is a read-only undirected simple graph.
//
// ids[i] is the vertex ID at dense index i (build order);
// index is the inverse mapping; adj[i] lists neighbor indices ascending.
// A Graph never changes after BuildGraph returns, so concurrent readers
// need no locking.
type Graph struct {
	ids   []string
	index map[string]int
	adj   [][]int
	size  int
}

// GraphStats is a snapshot of structural counters.
type GraphStats struct {
	Order      int     // |V|
	Size       int     // |E| after dropping loops and duplicates
	Density    float64 // 2|E| / (|V|(|V|-1)); 0 when |V| < 2
	MinDegree  int
	MaxDegree  int
	Isolated   int // vertices of degree 0
	Components int // connected components
}
