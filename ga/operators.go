package ga

import (
	"math/rand"

	"github.com/katalvlaran/prdga/labeling"
)

// OnePointCrossover cuts both parents at one position drawn from [1, n-1)
// and swaps the tails. With probability 1-Rate it copies the parents.
// For n == 2 the cut is 1; for n ≤ 1 the parents are always copied.
type OnePointCrossover struct {
	Rate float64
}

func (c OnePointCrossover) Cross(a, b labeling.Labeling, r *rand.Rand) (labeling.Labeling, labeling.Labeling) {
	n := len(a)
	if r.Float64() >= c.Rate || n <= 1 || len(b) != n {
		return a.Clone(), b.Clone()
	}
	cut := 1
	if n > 2 {
		cut = 1 + r.Intn(n-2)
	}

	c1 := make(labeling.Labeling, n)
	c2 := make(labeling.Labeling, n)
	copy(c1, a[:cut])
	copy(c1[cut:], b[cut:])
	copy(c2, b[:cut])
	copy(c2[cut:], a[cut:])
	return c1, c2
}

// UniformCrossover swaps each gene between the parents with probability
// 1/2. With probability 1-Rate it copies the parents.
type UniformCrossover struct {
	Rate float64
}

func (c UniformCrossover) Cross(a, b labeling.Labeling, r *rand.Rand) (labeling.Labeling, labeling.Labeling) {
	c1, c2 := a.Clone(), b.Clone()
	if r.Float64() >= c.Rate || len(a) != len(b) {
		return c1, c2
	}
	for i := range c1 {
		if r.Intn(2) == 0 {
			c1[i], c2[i] = c2[i], c1[i]
		}
	}
	return c1, c2
}

// RandomResetMutation, with probability Rate, sets one uniformly chosen
// position to a uniform label in {0,1,2}.
type RandomResetMutation struct {
	Rate float64
}

func (m RandomResetMutation) Mutate(l labeling.Labeling, r *rand.Rand) labeling.Labeling {
	if r.Float64() >= m.Rate || len(l) == 0 {
		return l
	}
	out := l.Clone()
	out[r.Intn(len(out))] = labeling.Label(r.Intn(3))
	return out
}

// SwapMutation, with probability Rate, exchanges the labels at two distinct
// positions.
type SwapMutation struct {
	Rate float64
}

func (m SwapMutation) Mutate(l labeling.Labeling, r *rand.Rand) labeling.Labeling {
	n := len(l)
	if r.Float64() >= m.Rate || n < 2 {
		return l
	}
	i := r.Intn(n)
	j := r.Intn(n - 1)
	if j >= i {
		j++
	}
	out := l.Clone()
	out[i], out[j] = out[j], out[i]
	return out
}

// GeneWiseMutation resets every position independently with probability
// Rate.
type GeneWiseMutation struct {
	Rate float64
}

func (m GeneWiseMutation) Mutate(l labeling.Labeling, r *rand.Rand) labeling.Labeling {
	if m.Rate <= 0 {
		return l
	}
	var out labeling.Labeling
	for i := range l {
		if r.Float64() >= m.Rate {
			continue
		}
		if out == nil {
			out = l.Clone()
		}
		out[i] = labeling.Label(r.Intn(3))
	}
	if out == nil {
		return l
	}
	return out
}
