package builder

import "fmt"

const (
	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4
)

// Path builds P_n (n ≥ 2) with edges {i, i+1}.
func Path(n int) Topology {
	return func(Config) (int, [][2]int, error) {
		if n < minPathNodes {
			return 0, nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n-1)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}
		return n, edges, nil
	}
}

// Cycle builds C_n (n ≥ 3) with edges {i, (i+1) mod n}.
func Cycle(n int) Topology {
	return func(Config) (int, [][2]int, error) {
		if n < minCycleNodes {
			return 0, nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, [2]int{i, (i + 1) % n})
		}
		return n, edges, nil
	}
}

// Star builds K_{1,n-1} (n ≥ 2) with center 0.
func Star(n int) Topology {
	return func(Config) (int, [][2]int, error) {
		if n < minStarNodes {
			return 0, nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{0, i})
		}
		return n, edges, nil
	}
}

// Wheel builds W_n (n ≥ 4): hub 0 joined to a rim cycle 1..n-1.
func Wheel(n int) Topology {
	return func(Config) (int, [][2]int, error) {
		if n < minWheelNodes {
			return 0, nil, fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
		}
		rim := n - 1
		edges := make([][2]int, 0, 2*rim)
		for i := 0; i < rim; i++ {
			edges = append(edges, [2]int{1 + i, 1 + (i+1)%rim})
		}
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{0, i})
		}
		return n, edges, nil
	}
}

// Complete builds K_n (n ≥ 1).
func Complete(n int) Topology {
	return func(Config) (int, [][2]int, error) {
		if n < 1 {
			return 0, nil, fmt.Errorf("Complete: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, [2]int{i, j})
			}
		}
		return n, edges, nil
	}
}

// CompleteBipartite builds K_{n1,n2} with left side 0..n1-1.
func CompleteBipartite(n1, n2 int) Topology {
	return func(Config) (int, [][2]int, error) {
		if n1 < 1 || n2 < 1 {
			return 0, nil, fmt.Errorf("CompleteBipartite: n1=%d n2=%d: %w", n1, n2, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n1*n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				edges = append(edges, [2]int{i, n1 + j})
			}
		}
		return n1 + n2, edges, nil
	}
}

// Grid builds the rows×cols 4-neighborhood grid; vertex r·cols+c is cell
// (r,c).
func Grid(rows, cols int) Topology {
	return func(Config) (int, [][2]int, error) {
		if rows < 1 || cols < 1 {
			return 0, nil, fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					edges = append(edges, [2]int{v, v + 1})
				}
				if r+1 < rows {
					edges = append(edges, [2]int{v, v + cols})
				}
			}
		}
		return rows * cols, edges, nil
	}
}
