// Package labeling defines the value types shared by the constructors, the
// oracle and the genetic engine: a Label in {0,1,2} (plus a transient Unset
// marker used during construction) and a Labeling aligned with a graph's
// dense vertex indices.
package labeling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Label is the value f(v) assigned to a vertex.
type Label int8

// Label values. Unset only appears while a constructor is running.
const (
	Unset Label = -1
	Zero  Label = 0
	One   Label = 1
	Two   Label = 2
)

// ErrParse is returned when a textual labeling cannot be decoded.
var ErrParse = errors.New("labeling: cannot parse labeling")

// Valid reports whether l is one of Zero, One, Two.
func (l Label) Valid() bool { return l >= Zero && l <= Two }

// String renders the label as its digit, or "-" for Unset.
func (l Label) String() string {
	if l == Unset {
		return "-"
	}
	return strconv.Itoa(int(l))
}

// Labeling maps dense vertex index i to its label.
type Labeling []Label

// New returns a labeling of length n with every entry Unset.
func New(n int) Labeling {
	l := make(Labeling, n)
	l.Reset()
	return l
}

// Uniform returns a labeling of length n with every entry set to v.
func Uniform(n int, v Label) Labeling {
	l := make(Labeling, n)
	for i := range l {
		l[i] = v
	}
	return l
}

// FromInts converts integer labels. Values outside {0,1,2} are kept as-is
// so that the oracle can reject them.
func FromInts(xs []int) Labeling {
	l := make(Labeling, len(xs))
	for i, x := range xs {
		l[i] = Label(x)
	}
	return l
}

// Reset sets every entry to Unset.
func (l Labeling) Reset() {
	for i := range l {
		l[i] = Unset
	}
}

// Clone returns an independent copy.
func (l Labeling) Clone() Labeling {
	if l == nil {
		return nil
	}
	out := make(Labeling, len(l))
	copy(out, l)
	return out
}

// Weight returns the sum of all labels. Unset entries count as zero.
func (l Labeling) Weight() int {
	var w int
	for _, x := range l {
		if x > 0 {
			w += int(x)
		}
	}
	return w
}

// Count returns how many entries equal v.
func (l Labeling) Count(v Label) int {
	var c int
	for _, x := range l {
		if x == v {
			c++
		}
	}
	return c
}

// Complete reports whether no entry is Unset.
func (l Labeling) Complete() bool {
	for _, x := range l {
		if x == Unset {
			return false
		}
	}
	return true
}

// Equal reports element-wise equality.
func (l Labeling) Equal(o Labeling) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if l[i] != o[i] {
			return false
		}
	}
	return true
}

// String renders the labeling compactly, e.g. "2001010".
func (l Labeling) String() string {
	var b strings.Builder
	b.Grow(len(l))
	for _, x := range l {
		b.WriteString(x.String())
	}
	return b.String()
}

// Parse decodes a labeling written either compactly ("2001010") or as
// separated integers ("2,0,0,1" / "2 0 0 1").
//
// Errors:
//   - ErrParse on any token outside {0,1,2}.
func Parse(s string) (Labeling, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Labeling{}, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\n' })
	if len(fields) == 1 && len(fields[0]) > 1 {
		fields = strings.Split(fields[0], "")
	}
	out := make(Labeling, len(fields))
	for i, f := range fields {
		switch f {
		case "0":
			out[i] = Zero
		case "1":
			out[i] = One
		case "2":
			out[i] = Two
		default:
			return nil, fmt.Errorf("%w: token %d is %q", ErrParse, i, f)
		}
	}
	return out, nil
}
