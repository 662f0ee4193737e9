// Package sgf parses Smart Game Format records into an arena-backed game tree.
//
// Only the grammar is handled here. Interpreting moves and setup stones is left
// to the board engine in game/wq.
package sgf

import (
	"fmt"
	"strings"
)

// ParseError reports malformed SGF text. Offset is the byte offset the parser
// was looking at when it gave up.
type ParseError struct {
	Offset int
	Msg    string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("sgf: %s at byte %d", err.Msg, err.Offset)
}

// frame is an open game tree on the parser's stack.
type frame struct {
	parent     int  // node the game tree hangs off, -1 for a root
	last       int  // last node of the sequence, -1 before the first ';'
	variations bool // a nested game tree has been seen; no more nodes allowed
	open       int  // offset of the '('
}

type parser struct {
	text  string
	pos   int
	tree  *Tree
	stack []frame
}

// Parse parses an SGF collection. Nesting is handled with an explicit stack,
// so deeply nested variations cannot exhaust the goroutine stack.
func Parse(text string) (*Tree, error) {
	p := &parser{text: text, tree: &Tree{}}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.tree, nil
}

func (p *parser) errorf(offset int, format string, args ...interface{}) error {
	return &ParseError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parse() error {
	for {
		p.skipSpace()
		if p.pos >= len(p.text) {
			break
		}
		c := p.text[p.pos]
		if len(p.stack) == 0 && c != '(' {
			if len(p.tree.roots) == 0 {
				return p.errorf(p.pos, "expected '(' to open a game tree, found %q", c)
			}
			return p.errorf(p.pos, "unexpected %q after game tree", c)
		}

		var err error
		switch {
		case c == '(':
			err = p.open()
		case c == ')':
			err = p.close()
		case c == ';':
			err = p.node()
		case c == '[':
			err = p.errorf(p.pos, "property value outside a node")
		case c == ']':
			err = p.errorf(p.pos, "unbalanced ']'")
		case isLetter(c):
			err = p.property()
		default:
			err = p.errorf(p.pos, "unexpected character %q", c)
		}
		if err != nil {
			return err
		}
	}

	if n := len(p.stack); n > 0 {
		return p.errorf(len(p.text), "unbalanced '(' opened at byte %d", p.stack[n-1].open)
	}
	if len(p.tree.roots) == 0 {
		return p.errorf(0, "no game tree")
	}
	return nil
}

func (p *parser) open() error {
	parent := -1
	if n := len(p.stack); n > 0 {
		top := &p.stack[n-1]
		if top.last < 0 {
			return p.errorf(p.pos, "variation before the first node of a game tree")
		}
		top.variations = true
		parent = top.last
	}
	p.stack = append(p.stack, frame{parent: parent, last: -1, open: p.pos})
	p.pos++
	return nil
}

func (p *parser) close() error {
	top := p.stack[len(p.stack)-1]
	if top.last < 0 {
		return p.errorf(top.open, "empty game tree")
	}
	p.stack = p.stack[:len(p.stack)-1]
	p.pos++
	return nil
}

func (p *parser) node() error {
	top := &p.stack[len(p.stack)-1]
	if top.variations {
		return p.errorf(p.pos, "node after a variation")
	}
	parent := top.last
	if parent < 0 {
		parent = top.parent
	}
	top.last = p.tree.add(parent, p.pos)
	p.pos++
	return nil
}

func (p *parser) property() error {
	top := &p.stack[len(p.stack)-1]
	start := p.pos
	if top.last < 0 || top.variations {
		return p.errorf(start, "property outside a node")
	}

	// FF[1] identifiers may carry lower-case letters (AddBlack); only the
	// upper-case ones are significant.
	var id []byte
	for p.pos < len(p.text) && isLetter(p.text[p.pos]) {
		if c := p.text[p.pos]; c >= 'A' && c <= 'Z' {
			id = append(id, c)
		}
		p.pos++
	}
	if len(id) == 0 {
		return p.errorf(start, "invalid property identifier %q", p.text[start:p.pos])
	}

	var values []string
	for {
		p.skipSpace()
		if p.pos >= len(p.text) || p.text[p.pos] != '[' {
			break
		}
		v, err := p.value()
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return p.errorf(start, "property %s has no value", id)
	}

	n := &p.tree.nodes[top.last]
	n.Properties = append(n.Properties, makeProperty(string(id), values))
	return nil
}

// value reads a bracketed value, resolving escapes and soft line breaks.
func (p *parser) value() (string, error) {
	open := p.pos
	p.pos++
	var b strings.Builder
	for p.pos < len(p.text) {
		c := p.text[p.pos]
		p.pos++
		switch c {
		case ']':
			return b.String(), nil
		case '\\':
			if p.pos >= len(p.text) {
				return "", p.errorf(open, "unterminated property value")
			}
			next := p.text[p.pos]
			p.pos++
			if next == '\n' || next == '\r' {
				// soft line break: \n, \r, \r\n or \n\r
				if p.pos < len(p.text) {
					if after := p.text[p.pos]; (after == '\n' || after == '\r') && after != next {
						p.pos++
					}
				}
				continue
			}
			b.WriteByte(next)
		default:
			b.WriteByte(c)
		}
	}
	return "", p.errorf(open, "unterminated property value")
}

func (p *parser) skipSpace() {
	for p.pos < len(p.text) {
		switch p.text[p.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			p.pos++
		default:
			return
		}
	}
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' }
