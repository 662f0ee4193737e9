package sgf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// ToDot renders the whole collection as a Graphviz digraph. Main-line edges
// are drawn bold; variations are dashed.
func (t *Tree) ToDot() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	// explicit stack, records can be thousands of nodes deep
	stack := append([]int(nil), t.roots...)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[i]

		attrs := map[string]string{
			"shape": "box",
			"label": strconv.Quote(nodeLabel(i, n)),
		}
		if n.Parent < 0 {
			attrs["shape"] = "doublecircle"
		}
		if err := g.AddNode("G", dotName(i), attrs); err != nil {
			return "", errors.WithMessagef(err, "unable to add node %d", i)
		}

		for k, kid := range n.Children {
			style := "bold"
			if k > 0 {
				style = "dashed"
			}
			if err := g.AddEdge(dotName(i), dotName(kid), true, map[string]string{"style": style}); err != nil {
				return "", errors.WithMessagef(err, "unable to add edge %d -> %d", i, kid)
			}
		}
		for k := len(n.Children) - 1; k >= 0; k-- {
			stack = append(stack, n.Children[k])
		}
	}
	return g.String(), nil
}

func dotName(i int) string { return fmt.Sprintf("n%d", i) }

func nodeLabel(i int, n *Node) string {
	var parts []string
	for _, p := range n.Properties {
		switch p.Kind {
		case MoveBlack, MoveWhite:
			parts = append(parts, fmt.Sprintf("%s[%s]", p.ID, p.Value()))
		case AddBlack, AddWhite:
			parts = append(parts, fmt.Sprintf("%s×%d", p.ID, len(p.Values)))
		case Size:
			parts = append(parts, fmt.Sprintf("SZ[%s]", p.Value()))
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("#%d", i)
	}
	return fmt.Sprintf("#%d %s", i, strings.Join(parts, " "))
}
