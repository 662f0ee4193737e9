package 围碁

import (
	"github.com/gorgonia/goban/game"
	"github.com/gorgonia/goban/sgf"
	"github.com/pkg/errors"
)

// AllMoves asks Replay for the whole main line.
const AllMoves = -1

// Position is the outcome of replaying a record.
type Position struct {
	*Board

	// Numbers holds, row-major, the applied move number of the stone currently
	// on each intersection. Setup stones and empty points are 0.
	Numbers []int

	History  []game.PlayerMove // applied moves, passes included
	Total    int               // moves available on the main line
	Captures [2]int            // stones captured by Black and by White
}

// Applied returns the number of moves that were applied.
func (p *Position) Applied() int { return len(p.History) }

// NumberAt returns the move number of the stone at c, 0 if there is none.
func (p *Position) NumberAt(c game.Coord) int { return p.Numbers[int(c.Y)*int(p.width)+int(c.X)] }

// LastMove returns the last applied move. ok is false when nothing was played.
func (p *Position) LastMove() (m game.PlayerMove, ok bool) {
	if len(p.History) == 0 {
		return game.PlayerMove{Player: game.Player(None), Coord: game.Pass}, false
	}
	return p.History[len(p.History)-1], true
}

// Replay walks the main line of the first game tree and returns the position
// after at most limit moves, or after every move when limit is AllMoves.
//
// Setup stones (AB/AW) are placed as they are met, the root's always. Passes
// count as moves. A limit past the end of the record is not an error; compare
// Applied with Total to find out.
func Replay(tree *sgf.Tree, limit int) (*Position, error) { return Walk(tree, limit, nil) }

// Walk is Replay that also calls fn with the position once the root's setup
// stones are placed and again after every applied move. Setup stones on a node
// go in before its move.
//
// The same Position is handed to every call and keeps changing, so fn must not
// hold on to it. An error from fn stops the walk and is returned unchanged.
func Walk(tree *sgf.Tree, limit int, fn func(*Position) error) (*Position, error) {
	w, h, err := tree.Size()
	if err != nil {
		return nil, err
	}
	board := NewBoard(w, h)
	pos := &Position{
		Board:   board,
		Numbers: make([]int, len(board.data)),
	}

	line := tree.MainLine()
	for _, i := range line {
		pos.Total += tree.Node(i).Moves()
	}

	for k, i := range line {
		if k > 0 && limit >= 0 && pos.Applied() >= limit {
			break
		}
		node := tree.Node(i)
		for _, p := range node.Properties {
			switch p.Kind {
			case sgf.AddBlack:
				err = pos.setup(game.Black, p.Values)
			case sgf.AddWhite:
				err = pos.setup(game.White, p.Values)
			}
			if err != nil {
				return nil, errors.WithMessagef(err, "node at byte %d", node.Offset)
			}
		}
		if k == 0 && fn != nil {
			if err = fn(pos); err != nil {
				return nil, err
			}
		}

		for _, p := range node.Properties {
			if p.Kind != sgf.MoveBlack && p.Kind != sgf.MoveWhite {
				continue
			}
			if limit >= 0 && pos.Applied() >= limit {
				break
			}
			colour := game.Black
			if p.Kind == sgf.MoveWhite {
				colour = game.White
			}
			if err = pos.play(colour, p.Value()); err != nil {
				return nil, errors.WithMessagef(err, "node at byte %d", node.Offset)
			}
			if fn != nil {
				if err = fn(pos); err != nil {
					return nil, err
				}
			}
		}
	}
	return pos, nil
}

func (p *Position) play(colour game.Colour, v string) error {
	number := p.Applied() + 1
	m := game.PlayerMove{Player: game.Player(colour), Coord: game.Pass}
	c, isPass, reason, ok := p.parsePoint(v, true)
	if !ok {
		return &MoveError{Move: m, Number: number, Value: v, Reason: reason}
	}
	if !isPass {
		m.Coord = c
		captured, err := p.Board.Apply(m)
		if err != nil {
			if me, ok := err.(*MoveError); ok {
				me.Number = number
				me.Value = v
			}
			return err
		}
		for _, s := range captured {
			p.Numbers[p.index(s)] = 0
		}
		p.Captures[colour-1] += len(captured)
		p.Numbers[p.index(c)] = number
	}
	p.History = append(p.History, m)
	return nil
}

func (p *Position) setup(colour game.Colour, values []string) error {
	for _, v := range values {
		points, reason, ok := p.parsePointList(v)
		if !ok {
			return &MoveError{Move: game.PlayerMove{Player: game.Player(colour), Coord: game.Pass}, Value: v, Reason: reason}
		}
		for _, c := range points {
			p.it[c.Y][c.X] = colour
			p.Numbers[p.index(c)] = 0
		}
	}
	return nil
}

func (p *Position) index(c game.Coord) int { return int(c.Y)*int(p.width) + int(c.X) }

// parsePoint decodes an SGF point such as "pd". Lower case letters are 0-25,
// upper case 26-51. An empty value, or "tt" on boards up to 19x19, is a pass
// when passes are allowed.
func (p *Position) parsePoint(v string, allowPass bool) (c game.Coord, isPass bool, reason Reason, ok bool) {
	if allowPass && (v == "" || v == "tt" && p.width <= 19 && p.height <= 19) {
		return game.Pass, true, 0, true
	}
	if len(v) != 2 {
		return c, false, BadCoordinate, false
	}
	x, okx := letter(v[0])
	y, oky := letter(v[1])
	if !okx || !oky {
		return c, false, BadCoordinate, false
	}
	c = game.Coord{X: x, Y: y}
	if !p.isCoordValid(c) {
		return c, false, OffBoard, false
	}
	return c, false, 0, true
}

// parsePointList expands a point or an FF[4] compressed rectangle "aa:cc".
func (p *Position) parsePointList(v string) ([]game.Coord, Reason, bool) {
	if len(v) == 5 && v[2] == ':' {
		a, _, reason, ok := p.parsePoint(v[:2], false)
		if !ok {
			return nil, reason, false
		}
		b, _, reason, ok := p.parsePoint(v[3:], false)
		if !ok {
			return nil, reason, false
		}
		x0, x1 := minmax(a.X, b.X)
		y0, y1 := minmax(a.Y, b.Y)
		var retVal []game.Coord
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				retVal = append(retVal, game.Coord{X: x, Y: y})
			}
		}
		return retVal, 0, true
	}
	c, _, reason, ok := p.parsePoint(v, false)
	if !ok {
		return nil, reason, false
	}
	return []game.Coord{c}, 0, true
}

func letter(b byte) (int16, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return int16(b - 'a'), true
	case b >= 'A' && b <= 'Z':
		return int16(b-'A') + 26, true
	}
	return 0, false
}

func minmax(a, b int16) (int16, int16) {
	if a < b {
		return a, b
	}
	return b, a
}
