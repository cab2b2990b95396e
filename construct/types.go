// Package construct builds Perfect Roman Dominating labelings from scratch.
//
// Two heuristics are provided, used both standalone and to seed the
// genetic engine:
//
//   - Randomized: one labeling per seed vertex taken from a shuffled order;
//     the seed gets 2, its neighbors 0, its two-hop neighbors a tentative 0,
//     and two cleanup passes settle everything else.
//   - DegreeBased: a single greedy pass in decreasing degree order that
//     places a 2 wherever no neighbor is already committed.
//
// RandomLabeling produces unconstrained labelings for population padding,
// and Repair turns any labeling into a valid one.
//
// Every routine is O(V + E) per labeling except DegreeBased, which also
// sorts the vertices once (O(V log V)).
package construct

import (
	"errors"
	"strconv"
)

// Sentinel errors for construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("construct: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("construct: invalid option supplied")
)

// TieBreak decides which of several equal-degree candidates DegreeBased
// labels first.
type TieBreak int

const (
	// TieBreakLowestID prefers the lowest vertex ID: integer IDs compare
	// numerically and sort before non-integer IDs, which compare
	// lexicographically.
	TieBreakLowestID TieBreak = iota

	// TieBreakInsertion prefers the vertex supplied first to BuildGraph.
	TieBreakInsertion
)

// String returns the policy name used in configuration files.
func (t TieBreak) String() string {
	switch t {
	case TieBreakLowestID:
		return "lowest-id"
	case TieBreakInsertion:
		return "insertion"
	default:
		return "TieBreak(" + strconv.Itoa(int(t)) + ")"
	}
}

// ParseTieBreak maps a configuration name to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "", "lowest-id":
		return TieBreakLowestID, nil
	case "insertion":
		return TieBreakInsertion, nil
	default:
		return 0, errors.Join(ErrOptionViolation, errors.New("unknown tie-break "+strconv.Quote(s)))
	}
}

// Option configures DegreeBased.
type Option func(*Options)

// Options holds the degree-based constructor settings.
type Options struct {
	TieBreak TieBreak

	err error
}

// DefaultOptions returns lowest-ID tie-breaking.
func DefaultOptions() Options {
	return Options{TieBreak: TieBreakLowestID}
}

// WithTieBreak selects the equal-degree policy. Unknown values are recorded
// and surfaced as ErrOptionViolation.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		switch t {
		case TieBreakLowestID, TieBreakInsertion:
			o.TieBreak = t
		default:
			o.err = errors.Join(ErrOptionViolation, errors.New("unknown tie-break "+t.String()))
		}
	}
}

// lessID orders vertex IDs for TieBreakLowestID.
func lessID(a, b string) bool {
	ai, aerr := strconv.ParseInt(a, 10, 64)
	bi, berr := strconv.ParseInt(b, 10, 64)
	switch {
	case aerr == nil && berr == nil:
		if ai != bi {
			return ai < bi
		}
		return a < b // "01" vs "1"
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}
