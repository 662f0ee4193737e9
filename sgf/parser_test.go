package sgf

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Basic(t *testing.T) {
	assert := assert.New(t)
	tree, err := Parse("(;GM[1]FF[4]SZ[9]PB[Lee Sedol]\n ;B[ee] ;W[cc]C[a comment])")
	require.NoError(t, err)

	assert.Equal(3, tree.Len())
	assert.Equal([]int{0, 1, 2}, tree.MainLine())

	root := tree.Node(tree.Root())
	assert.Equal(-1, root.Parent)
	sz, ok := root.Get(Size)
	assert.True(ok)
	assert.Equal("9", sz.Value())
	pb, ok := root.Lookup("PB")
	assert.True(ok)
	assert.Equal([]string{"Lee Sedol"}, pb)

	gm, _ := root.Lookup("GM")
	assert.Equal([]string{"1"}, gm)
	assert.Equal(Other, root.Properties[0].Kind)

	b := tree.Node(1)
	assert.Equal(0, b.Parent)
	mv, ok := b.Get(MoveBlack)
	assert.True(ok)
	assert.Equal("ee", mv.Value())

	w := tree.Node(2)
	c, ok := w.Get(Comment)
	assert.True(ok)
	assert.Equal("a comment", c.Value())
}

func TestParse_Variations(t *testing.T) {
	// ;B[aa] has two continuations. The first listed is the main line.
	tree, err := Parse("(;SZ[5];B[aa](;W[bb];B[cc])(;W[dd]))")
	require.NoError(t, err)

	want := []int{0, 1, 2, 3}
	if diff := cmp.Diff(want, tree.MainLine()); diff != "" {
		t.Errorf("main line mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{2, 4}, tree.Node(1).Children)
	assert.Equal(t, 1, tree.Node(4).Parent)

	alt, _ := tree.Node(4).Get(MoveWhite)
	assert.Equal(t, "dd", alt.Value())
}

func TestParse_Values(t *testing.T) {
	tree, err := Parse(`(;C[escaped \] bracket, \\ backslash \: colon]AB[aa][bb]  [cc]
	 GC[soft\
break])`)
	require.NoError(t, err)
	root := tree.Node(tree.Root())

	c, _ := root.Get(Comment)
	assert.Equal(t, `escaped ] bracket, \ backslash : colon`, c.Value())

	ab, _ := root.Get(AddBlack)
	assert.Equal(t, []string{"aa", "bb", "cc"}, ab.Values)

	gc, _ := root.Lookup("GC")
	assert.Equal(t, []string{"softbreak"}, gc)
}

func TestParse_PreservesValueWhitespace(t *testing.T) {
	tree, err := Parse("(;C[  two\n lines  ])")
	require.NoError(t, err)
	c, _ := tree.Node(0).Get(Comment)
	assert.Equal(t, "  two\n lines  ", c.Value())
}

func TestParse_LowerCaseIdentifier(t *testing.T) {
	tree, err := Parse("(;AddBlack[aa]SiZe[7])")
	require.NoError(t, err)
	root := tree.Node(0)
	ab, ok := root.Get(AddBlack)
	assert.True(t, ok)
	assert.Equal(t, "AB", ab.ID)
	w, h, err := tree.Size()
	require.NoError(t, err)
	assert.Equal(t, 7, w)
	assert.Equal(t, 7, h)
}

func TestParse_Collection(t *testing.T) {
	tree, err := Parse("(;SZ[9];B[aa]) (;SZ[13];B[bb])")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, tree.Roots())
	assert.Equal(t, 0, tree.Root())
	w, _, _ := tree.Size()
	assert.Equal(t, 9, w)
}

func TestParse_DeepNesting(t *testing.T) {
	const depth = 100000
	var b strings.Builder
	b.WriteString("(;SZ[19]")
	for i := 0; i < depth; i++ {
		b.WriteString("(;C[x]")
	}
	for i := 0; i < depth+1; i++ {
		b.WriteByte(')')
	}
	tree, err := Parse(b.String())
	require.NoError(t, err)
	assert.Equal(t, depth+1, tree.Len())
	assert.Len(t, tree.MainLine(), depth+1)
}

var parseErrorTests = []struct {
	name   string
	text   string
	offset int
}{
	{"truncated", "(;SZ[19];B[aa", 10},
	{"missing close paren", "(;SZ[19];B[aa]", 14},
	{"empty input", "", 0},
	{"whitespace only", "  \n ", 0},
	{"empty game tree", "()", 0},
	{"empty variation", "(;B[aa]())", 7},
	{"no opening paren", ";B[aa]", 0},
	{"value outside node", "([aa])", 1},
	{"property outside node", "(B[aa])", 1},
	{"stray close bracket", "(;B[aa]])", 7},
	{"stray close paren", "(;B[aa]))", 8},
	{"lower case identifier", "(;b[aa])", 2},
	{"property without value", "(;B)", 2},
	{"node after variation", "(;B[aa](;W[bb]);B[cc])", 15},
	{"unexpected character", "(;B[aa]#)", 7},
	{"trailing garbage", "(;B[aa]) junk", 9},
	{"escape at end", `(;C[abc\`, 3},
}

func TestParse_Errors(t *testing.T) {
	for _, pt := range parseErrorTests {
		t.Run(pt.name, func(t *testing.T) {
			tree, err := Parse(pt.text)
			require.Error(t, err)
			assert.Nil(t, tree)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected a *ParseError, got %T", err)
			assert.Equal(t, pt.offset, perr.Offset, "%v", err)
		})
	}
}

func TestParseSize(t *testing.T) {
	var sizeTests = []struct {
		v       string
		w, h    int
		willErr bool
	}{
		{"19", 19, 19, false},
		{" 9 ", 9, 9, false},
		{"15:10", 15, 10, false},
		{"15,10", 15, 10, false},
		{"2", 2, 2, false},
		{"25:2", 25, 2, false},
		{"1", 0, 0, true},
		{"26", 0, 0, true},
		{"19:1", 0, 0, true},
		{"abc", 0, 0, true},
		{"19:", 0, 0, true},
		{"1:2:3", 0, 0, true},
		{"", 0, 0, true},
		{"15::10", 0, 0, true},
		{":15:10", 0, 0, true},
		{"15:10:", 0, 0, true},
		{"15,:10", 0, 0, true},
		{"+19", 0, 0, true},
		{"-19", 0, 0, true},
		{"19: +9", 0, 0, true},
		{" 15 : 10 ", 15, 10, false},
	}
	for _, st := range sizeTests {
		w, h, err := ParseSize(st.v)
		if st.willErr {
			var serr *SizeError
			if !errors.As(err, &serr) {
				t.Errorf("ParseSize(%q): expected a *SizeError, got %v", st.v, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSize(%q): %v", st.v, err)
			continue
		}
		if w != st.w || h != st.h {
			t.Errorf("ParseSize(%q) = %dx%d, want %dx%d", st.v, w, h, st.w, st.h)
		}
	}
}

func TestTree_SizeDefault(t *testing.T) {
	tree, err := Parse("(;B[aa])")
	require.NoError(t, err)
	w, h, err := tree.Size()
	require.NoError(t, err)
	assert.Equal(t, 19, w)
	assert.Equal(t, 19, h)

	tree, err = Parse("(;SZ[30])")
	require.NoError(t, err, "size validation belongs to Size, not Parse")
	_, _, err = tree.Size()
	assert.Error(t, err)
}
