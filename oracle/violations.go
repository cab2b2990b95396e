package oracle

import (
	"fmt"

	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/labeling"
)

// ViolationKind classifies why a 0-labelled vertex breaks the PRD condition.
type ViolationKind int

const (
	// Undominated: the vertex has no neighbor labelled 2.
	Undominated ViolationKind = iota
	// OverDominated: the vertex has two or more neighbors labelled 2.
	OverDominated
)

func (k ViolationKind) String() string {
	switch k {
	case Undominated:
		return "undominated"
	case OverDominated:
		return "over-dominated"
	default:
		return fmt.Sprintf("ViolationKind(%d)", int(k))
	}
}

// Violation describes one offending vertex.
type Violation struct {
	Vertex string
	Index  int
	Kind   ViolationKind
	Twos   int // neighbors labelled 2
}

// Violations lists every 0-labelled vertex whose count of 2-neighbors is
// not exactly one, in index order. A labeling passes CheckPerfectDomination
// iff it is well-formed and this list is empty.
//
// Errors:
//   - any error from Validate.
//
// Complexity: O(V + E).
func Violations(g *core.Graph, l labeling.Labeling) ([]Violation, error) {
	if err := Validate(g, l); err != nil {
		return nil, err
	}
	var out []Violation
	for v, x := range l {
		if x != labeling.Zero {
			continue
		}
		c := twoNeighbors(g, l, v)
		switch {
		case c == 0:
			out = append(out, Violation{Vertex: g.ID(v), Index: v, Kind: Undominated})
		case c > 1:
			out = append(out, Violation{Vertex: g.ID(v), Index: v, Kind: OverDominated, Twos: c})
		}
	}
	return out, nil
}
