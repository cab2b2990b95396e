// Package ga evolves a population of labelings toward low-weight Perfect
// Roman Dominating Functions.
//
// An Engine moves through Uninitialized → Initialized → Evolving →
// Terminated. Initialization seeds the population from the randomized and
// degree-based constructors, padded with uniform random labelings. Each
// generation then runs tournament selection, crossover, mutation, optional
// repair, and a replacement policy. Strategies are pluggable through the
// Selector, Crossover, Mutator, Replacer and Repairer interfaces.
//
// The run length is fixed; there is no convergence-based stop, no retry and
// no rollback. Under ElitismReplacement with ElitismSize 0 the population's
// best fitness may get worse from one generation to the next; the engine
// therefore reports the best individual of every generation and the best
// observed overall.
//
// An Engine is single-threaded and deterministic for a fixed Config.Seed.
package ga

import (
	"errors"
	"fmt"
)

// Sentinel errors for GA configuration and execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("ga: graph is nil")

	// ErrInvalidConfiguration indicates an unusable Config, e.g.
	// elitism_size > population_size or crossover on a graph with ≤ 1 vertex.
	ErrInvalidConfiguration = errors.New("ga: invalid configuration")

	// ErrInsufficientPopulation indicates a population smaller than the
	// tournament size.
	ErrInsufficientPopulation = errors.New("ga: population smaller than tournament size")

	// ErrTerminated is returned by Step once every generation has run.
	ErrTerminated = errors.New("ga: engine terminated")

	// ErrNotInitialized is returned by Step before Init.
	ErrNotInitialized = errors.New("ga: engine not initialized")
)

// State is the lifecycle phase of an Engine.
type State int

const (
	Uninitialized State = iota
	Initialized
	Evolving
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Evolving:
		return "evolving"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
