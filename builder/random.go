package builder

import (
	"fmt"
)

// maxStubMatchingAttempts bounds the reshuffles of RandomRegular.
const maxStubMatchingAttempts = 200

// RandomSparse builds a G(n,p) graph: each pair {i,j}, i<j, is an edge
// independently with probability p. Pairs are tried in (i asc, j asc) order.
func RandomSparse(n int, p float64) Topology {
	return func(cfg Config) (int, [][2]int, error) {
		if n < 1 {
			return 0, nil, fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return 0, nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}
		var edges [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					edges = append(edges, [2]int{i, j})
				}
			}
		}
		return n, edges, nil
	}
}

// RandomRegular builds a simple d-regular graph by stub matching: every
// vertex contributes d stubs, the stubs are shuffled and paired, and the
// pairing is retried while it contains a loop or a repeated pair.
//
// Requires 0 ≤ d < n and n·d even.
func RandomRegular(n, d int) Topology {
	return func(cfg Config) (int, [][2]int, error) {
		if n < 1 {
			return 0, nil, fmt.Errorf("RandomRegular: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if d < 0 || d >= n || (n*d)%2 != 0 {
			return 0, nil, fmt.Errorf("RandomRegular: n=%d d=%d: %w", n, d, ErrInvalidDegree)
		}
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return n, nil, nil
		}

		for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if edges, ok := pairStubs(stubs); ok {
				return n, edges, nil
			}
		}
		return 0, nil, fmt.Errorf("RandomRegular: no simple pairing after %d attempts: %w",
			maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// pairStubs pairs consecutive stubs, rejecting loops and repeated pairs.
func pairStubs(stubs []int) ([][2]int, bool) {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	edges := make([][2]int, 0, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return nil, false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return nil, false
		}
		seen[key] = struct{}{}
		edges = append(edges, key)
	}
	return edges, true
}
