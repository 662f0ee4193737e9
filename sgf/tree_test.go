package sgf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const summaryRecord = `(;GM[1]FF[4]SZ[19]PB[AlphaGo]PW[Lee Sedol]RE[W+R]DT[2016-03-13]KM[7.5]
;B[pd]C[opening];W[dp];B[cd]
(;W[qp];B[op])
(;W[pq]C[alternative]))`

func TestTree_Summary(t *testing.T) {
	tree, err := Parse(summaryRecord)
	require.NoError(t, err)

	s, err := tree.Summary()
	require.NoError(t, err)
	assert.Equal(t, Summary{
		Width:      19,
		Height:     19,
		Black:      "AlphaGo",
		White:      "Lee Sedol",
		Date:       "2016-03-13",
		Result:     "W+R",
		Komi:       "7.5",
		Games:      1,
		Nodes:      7,
		Moves:      5,
		Variations: 1,
		Comments:   2,
	}, s)
}

func TestNode_Moves(t *testing.T) {
	tree, err := Parse("(;SZ[9]AB[aa];B[cc]W[gg]C[both];W[])")
	require.NoError(t, err)
	var got []int
	for _, i := range tree.MainLine() {
		got = append(got, tree.Node(i).Moves())
	}
	assert.Equal(t, []int{0, 2, 1}, got)

	s, err := tree.Summary()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Moves)
}

func TestTree_SummaryBadSize(t *testing.T) {
	tree, err := Parse("(;SZ[1:1])")
	require.NoError(t, err)
	_, err = tree.Summary()
	assert.Error(t, err)
}

func TestTree_ToDot(t *testing.T) {
	tree, err := Parse(summaryRecord)
	require.NoError(t, err)

	dot, err := tree.ToDot()
	require.NoError(t, err)
	t.Logf("\n%s", dot)

	assert.True(t, strings.HasPrefix(strings.TrimSpace(dot), "digraph G"))
	for i := 0; i < tree.Len(); i++ {
		assert.Contains(t, dot, dotName(i))
	}
	assert.Contains(t, dot, "B[pd]")
	assert.Contains(t, dot, "dashed")
	assert.Contains(t, dot, "bold")
}

func TestNodeLabel(t *testing.T) {
	tree, err := Parse("(;SZ[9]AB[aa][bb];B[cc]C[x];GN[nothing drawn])")
	require.NoError(t, err)
	assert.Equal(t, "#0 SZ[9] AB×2", nodeLabel(0, tree.Node(0)))
	assert.Equal(t, "#1 B[cc]", nodeLabel(1, tree.Node(1)))
	assert.Equal(t, "#2", nodeLabel(2, tree.Node(2)))
}

func TestTree_Title(t *testing.T) {
	for _, tc := range []struct{ record, title string }{
		{summaryRecord, "AlphaGo vs Lee Sedol"},
		{"(;GN[Game 4]PB[AlphaGo]PW[Lee Sedol])", "Game 4"},
		{"(;PW[Lee Sedol])", "? vs Lee Sedol"},
		{"(;SZ[9])", ""},
	} {
		tree, err := Parse(tc.record)
		require.NoError(t, err)
		assert.Equal(t, tc.title, tree.Title())
	}
}
