package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/labeling"
	"github.com/katalvlaran/prdga/oracle"
)

func scenario(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.BuildIndexed(7, [][2]int{{0, 4}, {0, 2}, {1, 2}, {2, 3}, {5, 1}, {5, 4}, {6, 2}, {6, 3}})
	require.NoError(t, err)
	return g
}

func path3(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.BuildIndexed(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	return g
}

func TestCheckPerfectDomination_Path(t *testing.T) {
	g := path3(t)
	cases := []struct {
		name  string
		l     []int
		count bool
		full  bool
	}{
		{"center two", []int{0, 2, 0}, true, true},
		{"all ones", []int{1, 1, 1}, true, true},
		{"zero without two", []int{0, 1, 1}, false, false},
		{"double dominated", []int{2, 0, 2}, false, false},
		{"ends two", []int{2, 1, 2}, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := labeling.FromInts(tc.l)
			assert.Equal(t, tc.count, oracle.CheckPerfectCount(g, l))
			assert.Equal(t, tc.full, oracle.CheckPerfectDomination(g, l))
		})
	}
}

func TestCheckPerfectDomination_Idempotent(t *testing.T) {
	g := scenario(t)
	for _, l := range []labeling.Labeling{
		labeling.FromInts([]int{0, 0, 2, 0, 1, 1, 0}),
		labeling.FromInts([]int{0, 0, 0, 0, 0, 0, 0}),
	} {
		first := oracle.CheckPerfectDomination(g, l)
		second := oracle.CheckPerfectDomination(g, l)
		assert.Equal(t, first, second)
	}
}

func TestCheckPerfectDomination_Malformed(t *testing.T) {
	g := path3(t)
	assert.False(t, oracle.CheckPerfectDomination(g, labeling.FromInts([]int{1, 1})))
	assert.False(t, oracle.CheckPerfectDomination(g, labeling.FromInts([]int{1, 3, 1})))
	assert.False(t, oracle.CheckPerfectDomination(nil, labeling.FromInts([]int{1})))

	require.ErrorIs(t, oracle.Validate(g, labeling.FromInts([]int{1, 1})), oracle.ErrLabelingLength)
	require.ErrorIs(t, oracle.Validate(g, labeling.FromInts([]int{1, -1, 1})), oracle.ErrLabelOutOfRange)
	require.ErrorIs(t, oracle.Validate(nil, nil), oracle.ErrGraphNil)
	require.NoError(t, oracle.Validate(g, labeling.FromInts([]int{0, 2, 0})))
}

func TestBatch_OrderPreserving(t *testing.T) {
	g := path3(t)
	ls := []labeling.Labeling{
		labeling.FromInts([]int{0, 2, 0}),
		labeling.FromInts([]int{2, 0, 2}),
		labeling.FromInts([]int{1, 1, 1}),
		labeling.FromInts([]int{0, 0, 0}),
	}
	assert.Equal(t, []bool{true, false, true, false}, oracle.CheckPerfectDominationBatch(g, ls))
	assert.Empty(t, oracle.CheckPerfectDominationBatch(g, nil))
}

func TestFitness(t *testing.T) {
	g := path3(t)
	assert.Equal(t, 2, oracle.Fitness(g, labeling.FromInts([]int{0, 2, 0})))
	assert.Equal(t, 3, oracle.Fitness(g, labeling.FromInts([]int{1, 1, 1})))
	// invalid: weight 4 + 3*PenaltyFactor
	assert.Equal(t, 4+3*oracle.PenaltyFactor, oracle.Fitness(g, labeling.FromInts([]int{2, 0, 2})))
	assert.Equal(t, 4, oracle.Weight(labeling.FromInts([]int{2, 0, 2})))

	f, ok := oracle.Evaluate(g, labeling.FromInts([]int{0, 0, 0}))
	assert.False(t, ok)
	assert.Equal(t, 3*oracle.PenaltyFactor, f)
}

// TestPenalty_SeparatesValidFromInvalid checks that every invalid labeling
// on a small graph scores above every valid one.
func TestPenalty_SeparatesValidFromInvalid(t *testing.T) {
	g := path3(t)
	worstValid, bestInvalid := -1, 1<<30
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 3; c++ {
				f, ok := oracle.Evaluate(g, labeling.FromInts([]int{a, b, c}))
				if ok && f > worstValid {
					worstValid = f
				}
				if !ok && f < bestInvalid {
					bestInvalid = f
				}
			}
		}
	}
	assert.Less(t, worstValid, bestInvalid)
}

func TestEvaluateWithPenalty(t *testing.T) {
	g := path3(t)
	f, ok, err := oracle.EvaluateWithPenalty(g, labeling.FromInts([]int{0, 0, 0}), 2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 6, f)

	_, _, err = oracle.EvaluateWithPenalty(g, labeling.FromInts([]int{0, 0, 0}), 1)
	require.ErrorIs(t, err, oracle.ErrPenaltyTooSmall)
}

func TestViolations(t *testing.T) {
	g := path3(t)
	vs, err := oracle.Violations(g, labeling.FromInts([]int{2, 0, 2}))
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "1", vs[0].Vertex)
	assert.Equal(t, oracle.OverDominated, vs[0].Kind)
	assert.Equal(t, 2, vs[0].Twos)

	vs, err = oracle.Violations(g, labeling.FromInts([]int{0, 1, 1}))
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, oracle.Undominated, vs[0].Kind)
	assert.Equal(t, "undominated", vs[0].Kind.String())

	vs, err = oracle.Violations(g, labeling.FromInts([]int{0, 2, 0}))
	require.NoError(t, err)
	assert.Empty(t, vs)

	_, err = oracle.Violations(g, labeling.FromInts([]int{0}))
	require.ErrorIs(t, err, oracle.ErrLabelingLength)
}
