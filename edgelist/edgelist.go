// Package edgelist reads graph instances in the plain edge-list format:
//
//	n m
//	u v
//	u v
//	...
//
// The header gives the vertex count n and the declared edge count m.
// Vertices are the integers 0..n-1. Blank lines and lines starting with '#'
// are skipped. The declared m is informational; every "u v" line that
// follows is read. An order above MaxOrder is rejected as a malformed header.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/prdga/core"
)

const (
	// MaxOrder bounds the vertex count accepted from a header.
	MaxOrder = 1 << 22

	// maxPrealloc caps the edge capacity reserved from the declared m.
	maxPrealloc = 1 << 16
)

// Sentinel errors for malformed input.
var (
	// ErrMalformedHeader indicates a missing or non-numeric "n m" line, or
	// an n above MaxOrder.
	ErrMalformedHeader = errors.New("edgelist: malformed header")

	// ErrMalformedEdge indicates an edge line that is not two integers in
	// [0, n).
	ErrMalformedEdge = errors.New("edgelist: malformed edge")
)

// Instance is a parsed edge list.
type Instance struct {
	Name     string   // file stem, empty when read from a stream
	Order    int      // n from the header
	Declared int      // m from the header
	Edges    [][2]int // edges in file order, loops and repeats included
}

// Read parses an instance from r.
//
// Errors:
//   - ErrMalformedHeader, ErrMalformedEdge with the offending line number.
//   - I/O errors from r.
func Read(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		inst   *Instance
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a, b, ok := pair(line)
		if inst == nil {
			if !ok || a < 0 || b < 0 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedHeader, lineNo, line)
			}
			if a > MaxOrder {
				return nil, fmt.Errorf("%w: line %d: order %d exceeds %d", ErrMalformedHeader, lineNo, a, MaxOrder)
			}
			inst = &Instance{Order: a, Declared: b, Edges: make([][2]int, 0, min(b, maxPrealloc))}
			continue
		}
		if !ok || a < 0 || b < 0 || a >= inst.Order || b >= inst.Order {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedEdge, lineNo, line)
		}
		inst.Edges = append(inst.Edges, [2]int{a, b})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}
	if inst == nil {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedHeader)
	}
	return inst, nil
}

// Load reads the instance at path; Name is the file name without extension.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open: %w", err)
	}
	defer f.Close()

	inst, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Base(path)
	inst.Name = strings.TrimSuffix(base, filepath.Ext(base))
	return inst, nil
}

// WriteTo writes the instance in edge-list format. The header carries the
// number of edges actually written.
func (in *Instance) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	n, err := fmt.Fprintf(bw, "%d %d\n", in.Order, len(in.Edges))
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, e := range in.Edges {
		n, err = fmt.Fprintf(bw, "%d %d\n", e[0], e[1])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// Graph builds the core graph. Loops and repeated edges are dropped.
func (in *Instance) Graph() (*core.Graph, error) {
	return core.BuildIndexed(in.Order, in.Edges)
}

// Density returns 2m/(n(n-1)) over the edges actually read, or 0 for n < 2.
func (in *Instance) Density() float64 {
	if in.Order < 2 {
		return 0
	}
	return 2 * float64(len(in.Edges)) / float64(in.Order*(in.Order-1))
}

func pair(line string) (int, int, bool) {
	fs := strings.Fields(line)
	if len(fs) != 2 {
		return 0, 0, false
	}
	a, err := strconv.Atoi(fs[0])
	if err != nil {
		return 0, 0, false
	}
	b, err := strconv.Atoi(fs[1])
	if err != nil {
		return 0, 0, false
	}
	return a, b, true
}
