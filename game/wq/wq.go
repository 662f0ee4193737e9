// package 围碁 implements the Go board and the replay of recorded games.
//
// 围碁 is a bastardized word.
// The first character is read "wei" in Chinese. The second is read "qi" in Chinese.
// However, the charcter 碁 is no longer actively used in Chinese.
// It is however, actively used in Japanese. Specifically, it's read "go" in Japanese.
//
// The main reason why this package is named with unicode characters instead of `package go`
// is because the standard library of the Go language have the prefix "go"
package 围碁

import (
	"fmt"

	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
)

const (
	None  = game.None
	Black = game.Black
	White = game.White
)

// IsValid checks that a player is indeed valid
func IsValid(p game.Player) bool { return game.Colour(p) == game.Black || game.Colour(p) == game.White }

// Board is a width×height grid of intersections, stored row-major.
type Board struct {
	width, height int16
	data          []game.Colour   // backing data
	it            [][]game.Colour // row views into data, it[y][x]
}

// NewBoard creates an empty board. The dimensions are not range checked here;
// that's the job of whoever reads them off the record.
func NewBoard(width, height int) *Board {
	data, it := makeBoard(width, height)
	return &Board{
		width:  int16(width),
		height: int16(height),
		data:   data,
		it:     it,
	}
}

func makeBoard(width, height int) (board []game.Colour, iterator [][]game.Colour) {
	board = make([]game.Colour, width*height)
	iterator = make([][]game.Colour, height)
	for i := range iterator {
		start := i * width
		iterator[i] = board[start : start+width : start+width]
	}
	return
}

// Format implements fmt.Formatter
func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		for _, row := range b.it {
			fmt.Fprint(s, "⎢ ")
			for _, col := range row {
				fmt.Fprintf(s, "%s ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}

// Size returns the width and height of the board.
func (b *Board) Size() (width, height int) { return int(b.width), int(b.height) }

// Data returns the row-major backing slice. Callers must not modify it.
func (b *Board) Data() []game.Colour { return b.data }

// At returns the colour at c. c must be on the board.
func (b *Board) At(c game.Coord) game.Colour { return b.it[c.Y][c.X] }

// Count returns the number of stones of the given colour.
func (b *Board) Count(colour game.Colour) (n int) {
	for _, c := range b.data {
		if c == colour {
			n++
		}
	}
	return n
}

// Set puts a colour on an intersection without any capture processing.
// Setup properties (AB/AW) use this.
func (b *Board) Set(c game.Coord, colour game.Colour) error {
	if !b.isCoordValid(c) {
		return errors.Errorf("%v is off a %dx%d board", c, b.width, b.height)
	}
	b.it[c.Y][c.X] = colour
	return nil
}

// Apply places a stone and removes the opposing groups left without liberties.
// It returns the captured intersections in the order they were found.
//
// Opposing neighbours are examined up, right, down, left. A move whose own
// group has no liberty once the captures are removed is suicide; the board is
// left untouched and an error is returned.
func (b *Board) Apply(m game.PlayerMove) ([]game.Coord, error) {
	if !IsValid(m.Player) {
		return nil, &MoveError{Move: m, Reason: ImpossiblePlayer}
	}
	if m.IsPass() {
		return nil, nil
	}
	if !b.isCoordValid(m.Coord) {
		return nil, &MoveError{Move: m, Reason: OffBoard}
	}
	// if the board location is not empty, then clearly we can't apply
	if b.At(m.Coord) != game.None {
		return nil, &MoveError{Move: m, Reason: Occupied}
	}

	colour := game.Colour(m.Player)
	b.it[m.Y][m.X] = colour

	var captures []game.Coord
	for _, a := range b.adjacentsCoord(m.Coord) {
		if !b.isCoordValid(a) || b.At(a) != colour.Opponent() {
			continue
		}
		// an earlier neighbour may belong to the same group and be gone already
		group, libs := b.group(a)
		if libs > 0 {
			continue
		}
		for _, s := range group {
			b.it[s.Y][s.X] = game.None
		}
		captures = append(captures, group...)
	}

	if _, libs := b.group(m.Coord); libs == 0 {
		b.it[m.Y][m.X] = game.None
		return nil, &MoveError{Move: m, Reason: Suicide}
	}
	return captures, nil
}

// group flood fills the chain containing c with an explicit work list and
// returns its stones together with the number of distinct liberties.
func (b *Board) group(c game.Coord) (stones []game.Coord, liberties int) {
	colour := b.At(c)
	w := int(b.width)
	seen := make([]bool, len(b.data))
	libSeen := make([]bool, len(b.data))

	seen[int(c.Y)*w+int(c.X)] = true
	queue := []game.Coord{c}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		stones = append(stones, cur)

		for _, a := range b.adjacentsCoord(cur) {
			if !b.isCoordValid(a) {
				continue
			}
			i := int(a.Y)*w + int(a.X)
			switch b.data[i] {
			case game.None:
				if !libSeen[i] {
					libSeen[i] = true
					liberties++
				}
			case colour:
				if !seen[i] {
					seen[i] = true
					queue = append(queue, a)
				}
			}
		}
	}
	return stones, liberties
}

// Liberties returns the liberty count of the group at c, or 0 for an empty point.
func (b *Board) Liberties(c game.Coord) int {
	if !b.isCoordValid(c) || b.At(c) == game.None {
		return 0
	}
	_, libs := b.group(c)
	return libs
}

// adjacentsCoord returns the adjacent positions given a coord
func (b *Board) adjacentsCoord(c game.Coord) (retVal [4]game.Coord) {
	for i := range retVal {
		retVal[i] = c.Add(adjacents[i])
	}
	return retVal
}

func (b *Board) isCoordValid(c game.Coord) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// up, right, down, left
var adjacents = [4]game.Coord{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}
