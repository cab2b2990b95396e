// Package builder generates benchmark topologies for PRD experiments.
//
// A Topology is a deterministic recipe over dense vertex indices 0..n-1.
// Build turns it into a core.Graph; Instance turns it into an
// edgelist.Instance that can be written to disk and read back by the CLI.
//
// Determinism: the same topology, parameters and seed always produce the
// same edge list in the same order.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/edgelist"
	"github.com/katalvlaran/prdga/rng"
)

// Sentinel errors.
var (
	// ErrTooFewVertices indicates a size parameter below the topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrInvalidDegree indicates a degree outside [0,n) or an odd n·d.
	ErrInvalidDegree = errors.New("builder: invalid degree")

	// ErrConstructFailed indicates that a randomized topology gave up.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrNilTopology is returned when Build receives a nil topology.
	ErrNilTopology = errors.New("builder: topology is nil")
)

// Topology produces a vertex count and an edge list over 0..n-1.
type Topology func(cfg Config) (n int, edges [][2]int, err error)

// Config carries the knobs shared by topologies.
type Config struct {
	rng *rand.Rand
}

// Option customizes Config.
type Option func(*Config)

// WithSeed seeds the random source of randomized topologies.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.rng = rng.FromSeed(seed) }
}

// WithRand sets the random source directly. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *Config) {
		if r != nil {
			c.rng = r
		}
	}
}

func newConfig(opts ...Option) Config {
	c := Config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rng.FromSeed(rng.DefaultSeed)
	}
	return c
}

// Edges evaluates t and returns its vertex count and edge list.
func Edges(t Topology, opts ...Option) (int, [][2]int, error) {
	if t == nil {
		return 0, nil, ErrNilTopology
	}
	n, edges, err := t(newConfig(opts...))
	if err != nil {
		return 0, nil, fmt.Errorf("builder: %w", err)
	}
	return n, edges, nil
}

// Build evaluates t into a core.Graph with IDs "0".."n-1".
func Build(t Topology, opts ...Option) (*core.Graph, error) {
	n, edges, err := Edges(t, opts...)
	if err != nil {
		return nil, err
	}
	return core.BuildIndexed(n, edges)
}

// Instance evaluates t into a named edge-list instance.
func Instance(name string, t Topology, opts ...Option) (*edgelist.Instance, error) {
	n, edges, err := Edges(t, opts...)
	if err != nil {
		return nil, err
	}
	return &edgelist.Instance{Name: name, Order: n, Declared: len(edges), Edges: edges}, nil
}
