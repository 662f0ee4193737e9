package game

import (
	"fmt"
	"image"
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board diagrams
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Opponent returns the other stone colour. None has no opponent.
func (cl Colour) Opponent() Colour {
	switch cl {
	case Black:
		return White
	case White:
		return Black
	}
	return None
}

// Player represents a player. It's also a colour.
type Player Colour

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// Coord represents a (column, row) intersection.
// SGF boards top out at 52 lines, so an int16 per axis is plenty.
//
// The Coord uses standard computer cartesian coordinates
//		- (0, 0) represents the top left
//		- (18, 18) represents the bottom right of a 19x19 board
//		- (-1, -1) represents a "pass" move
type Coord struct {
	X, Y int16
}

// Pass is the coordinate of a pass move.
var Pass = Coord{-1, -1}

func (c Coord) Add(other Coord) Coord { return Coord{c.X + other.X, c.Y + other.Y} }

// IsPass returns true when the coordinate represents a "pass" move
func (c Coord) IsPass() bool { return c == Pass }

// PlayerMove is a tuple indicating the player and the intersection played.
type PlayerMove struct {
	Player
	Coord
}

func (p PlayerMove) Format(s fmt.State, c rune) {
	if p.IsPass() {
		fmt.Fprintf(s, "%v@pass", p.Player)
		return
	}
	fmt.Fprintf(s, "%v@(%d,%d)", p.Player, p.X, p.Y)
}

// MetaState is a rendered frame of a game record, handed to an output encoder.
type MetaState interface {
	Name() string       // name of the game record
	MoveNumber() int    // number of applied moves that led to this frame
	Image() image.Image // the rendered board
}
