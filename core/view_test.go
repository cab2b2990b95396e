package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prdga/core"
)

// TestAdjacencyMatrix_MatchesLists checks the dense view against the lists.
func TestAdjacencyMatrix_MatchesLists(t *testing.T) {
	g, err := core.BuildIndexed(7, scenarioEdges)
	require.NoError(t, err)

	m := g.AdjacencyMatrix()
	require.Len(t, m, 7)
	for i := 0; i < 7; i++ {
		count := 0
		for j := 0; j < 7; j++ {
			assert.Equal(t, m[i][j], m[j][i], "matrix must be symmetric")
			if m[i][j] {
				count++
			}
		}
		assert.Equal(t, g.DegreeAt(i), count)
		for _, j := range g.NeighborsAt(i) {
			assert.True(t, m[i][j])
		}
	}
}

func TestStats(t *testing.T) {
	// Two components: triangle a-b-c and edge d-e, plus isolated f.
	g, err := core.BuildGraph(
		[]string{"a", "b", "c", "d", "e", "f"},
		[]core.Edge{core.E("a", "b"), core.E("b", "c"), core.E("c", "a"), core.E("d", "e")},
	)
	require.NoError(t, err)

	st := g.Stats()
	assert.Equal(t, 6, st.Order)
	assert.Equal(t, 4, st.Size)
	assert.InDelta(t, 8.0/30.0, st.Density, 1e-12)
	assert.Equal(t, 0, st.MinDegree)
	assert.Equal(t, 2, st.MaxDegree)
	assert.Equal(t, 1, st.Isolated)
	assert.Equal(t, 3, st.Components)

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.ElementsMatch(t, []int{0, 1, 2}, comps[0])
	assert.ElementsMatch(t, []int{3, 4}, comps[1])
	assert.Equal(t, []int{5}, comps[2])
}
