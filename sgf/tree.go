package sgf

// Node is a single `;` segment of a record.
//
// Nodes live in the Tree's arena and refer to each other by index. Children[0]
// is the main continuation; the rest are variations in the order they appear.
// Parent is -1 for a root and is only kept for diagnostics.
type Node struct {
	Properties []Property
	Children   []int
	Parent     int
	Offset     int // byte offset of the ';' that opened the node
}

// Get returns the first property of the given kind.
func (n *Node) Get(k Kind) (Property, bool) {
	for _, p := range n.Properties {
		if p.Kind == k {
			return p, true
		}
	}
	return Property{}, false
}

// Lookup returns the values of a property by its raw identifier.
func (n *Node) Lookup(id string) ([]string, bool) {
	for _, p := range n.Properties {
		if p.ID == id {
			return p.Values, true
		}
	}
	return nil, false
}

// Moves counts the B and W properties of the node. Well formed records have
// at most one, but a node holding both is played in property order.
func (n *Node) Moves() (count int) {
	for _, p := range n.Properties {
		if p.Kind == MoveBlack || p.Kind == MoveWhite {
			count++
		}
	}
	return count
}

// Tree is a parsed SGF collection. The first game tree of the collection is
// the one that gets rendered.
//
// A Tree is never modified once Parse returns it.
type Tree struct {
	nodes []Node
	roots []int
}

func (t *Tree) add(parent, offset int) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, Node{Parent: parent, Offset: offset})
	if parent < 0 {
		t.roots = append(t.roots, id)
	} else {
		t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	}
	return id
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node at index i. The returned node must not be modified.
func (t *Tree) Node(i int) *Node { return &t.nodes[i] }

// Root returns the index of the root node of the first game tree.
func (t *Tree) Root() int { return t.roots[0] }

// Roots returns the root indices of every game tree in the collection.
func (t *Tree) Roots() []int {
	retVal := make([]int, len(t.roots))
	copy(retVal, t.roots)
	return retVal
}

// MainLine returns the node indices reached from the root by always taking
// the first child.
func (t *Tree) MainLine() []int {
	var retVal []int
	for i := t.Root(); ; i = t.nodes[i].Children[0] {
		retVal = append(retVal, i)
		if len(t.nodes[i].Children) == 0 {
			return retVal
		}
	}
}

// Size returns the board dimensions declared by the root's SZ property,
// defaulting to 19x19.
func (t *Tree) Size() (width, height int, err error) {
	sz, ok := t.nodes[t.Root()].Get(Size)
	if !ok {
		return DefaultSize, DefaultSize, nil
	}
	return ParseSize(sz.Value())
}
