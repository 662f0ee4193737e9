package sgf

// Summary describes a record at a glance. It is what `sgfrender --info` prints.
type Summary struct {
	Name       string `yaml:"name,omitempty"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Black      string `yaml:"black,omitempty"`
	White      string `yaml:"white,omitempty"`
	Event      string `yaml:"event,omitempty"`
	Date       string `yaml:"date,omitempty"`
	Result     string `yaml:"result,omitempty"`
	Komi       string `yaml:"komi,omitempty"`
	Games      int    `yaml:"games"`
	Nodes      int    `yaml:"nodes"`
	Moves      int    `yaml:"moves"` // B/W properties on the main line
	Variations int    `yaml:"variations"`
	Comments   int    `yaml:"comments"`
}

// Summary collects the game info of the first game tree. A board size error is
// returned as is.
func (t *Tree) Summary() (Summary, error) {
	w, h, err := t.Size()
	if err != nil {
		return Summary{}, err
	}
	root := t.Node(t.Root())
	s := Summary{
		Name:   first(root, "GN"),
		Width:  w,
		Height: h,
		Black:  first(root, "PB"),
		White:  first(root, "PW"),
		Event:  first(root, "EV"),
		Date:   first(root, "DT"),
		Result: first(root, "RE"),
		Komi:   first(root, "KM"),
		Games:  len(t.roots),
		Nodes:  len(t.nodes),
	}
	for _, i := range t.MainLine() {
		s.Moves += t.nodes[i].Moves()
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		if len(n.Children) > 1 {
			s.Variations += len(n.Children) - 1
		}
		if _, ok := n.Get(Comment); ok {
			s.Comments++
		}
	}
	return s, nil
}

func first(n *Node, id string) string {
	if vs, ok := n.Lookup(id); ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Title names the first game: its GN, or "PB vs PW" when there is no GN.
func (t *Tree) Title() string {
	root := t.Node(t.Root())
	if gn := first(root, "GN"); gn != "" {
		return gn
	}
	b, w := first(root, "PB"), first(root, "PW")
	if b == "" && w == "" {
		return ""
	}
	if b == "" {
		b = "?"
	}
	if w == "" {
		w = "?"
	}
	return b + " vs " + w
}
