// Package rng centralizes deterministic random generation for the
// constructors and the genetic engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical labelings and GA runs.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - No panics on user input; helpers degrade to no-ops on empty ranges.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveSeed to give each trial or worker its own seed.
package rng

import "math/rand"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using a SplitMix64-style finalizer, so that trial k of a run never shares a
// stream with trial k+1.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// orDefault returns r, or a fresh default stream when r is nil.
func orDefault(r *rand.Rand) *rand.Rand {
	if r == nil {
		return FromSeed(0)
	}
	return r
}

// ShuffleInts performs an in-place Fisher–Yates shuffle of a using r.
// If r==nil, a deterministic default stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func ShuffleInts(a []int, r *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}
	r = orDefault(r)

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a permutation of 0..n-1 generated from r. For n<=0 it returns
// an empty slice.
//
// Complexity: O(n) time, O(n) space.
func Perm(n int, r *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	ShuffleInts(p, r)
	return p
}

// SampleDistinct draws k distinct indices uniformly from [0,n) without
// replacement (partial Fisher–Yates). k is clipped to n.
//
// Complexity: O(n) time and space.
func SampleDistinct(n, k int, r *rand.Rand) []int {
	if n <= 0 || k <= 0 {
		return []int{}
	}
	if k > n {
		k = n
	}
	r = orDefault(r)

	pool := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		pool[i] = i
	}
	for i = 0; i < k; i++ {
		j = i + r.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
