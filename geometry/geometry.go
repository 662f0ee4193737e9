// Package geometry maps board intersections onto a fixed canvas.
package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gorgonia/goban/game"
	"github.com/gorgonia/goban/sgf"
)

const (
	// DefaultCanvas is the width and height of a rendered image.
	DefaultCanvas = 800

	// padding, in grid spacings, around the longer axis. Half of it goes on each side.
	padding = 3

	stoneRatio = 0.47
	lineRatio  = 0.04
	starRatio  = 0.12
)

// CanvasError is returned for a canvas that cannot hold a board.
type CanvasError struct {
	Width, Height int
}

func (err *CanvasError) Error() string {
	return fmt.Sprintf("geometry: invalid canvas %dx%d", err.Width, err.Height)
}

// Table is the pixel layout of one board on one canvas. It is read only.
type Table struct {
	Cols, Rows int // board size
	CanvasW    int
	CanvasH    int
	Spacing    float32 // distance between adjacent lines, identical on both axes
	MarginX    float32 // x of the first column
	MarginY    float32 // y of the first row
	Radius     float32 // stone radius
	LineWidth  float32
	StarRadius float32
	stars      []game.Coord
}

// Resolve lays out a cols×rows board on a canvasW×canvasH canvas. The longer
// board axis fills the canvas less padding; the shorter one is centred.
func Resolve(cols, rows, canvasW, canvasH int) (*Table, error) {
	if err := sgf.CheckSize(cols, rows); err != nil {
		return nil, err
	}
	if canvasW <= 0 || canvasH <= 0 {
		return nil, &CanvasError{canvasW, canvasH}
	}

	long := float32(max(cols, rows) - 1)
	spacing := float32(min(canvasW, canvasH)) / (long + padding)
	t := &Table{
		Cols:       cols,
		Rows:       rows,
		CanvasW:    canvasW,
		CanvasH:    canvasH,
		Spacing:    spacing,
		MarginX:    (float32(canvasW) - spacing*float32(cols-1)) / 2,
		MarginY:    (float32(canvasH) - spacing*float32(rows-1)) / 2,
		Radius:     spacing * stoneRatio,
		LineWidth:  math32.Max(1, spacing*lineRatio),
		StarRadius: math32.Max(2, spacing*starRatio),
		stars:      StarPoints(cols, rows),
	}
	return t, nil
}

// Point returns the pixel centre of the intersection at (col, row).
func (t *Table) Point(col, row int) (x, y float32) {
	return t.MarginX + float32(col)*t.Spacing, t.MarginY + float32(row)*t.Spacing
}

// At is Point for a game.Coord.
func (t *Table) At(c game.Coord) (x, y float32) { return t.Point(int(c.X), int(c.Y)) }

// StarPoints returns the hoshi of the table's board.
func (t *Table) StarPoints() []game.Coord {
	if len(t.stars) == 0 {
		return nil
	}
	retVal := make([]game.Coord, len(t.stars))
	copy(retVal, t.stars)
	return retVal
}

// StarPoints returns the conventional star points for a board. Only the
// 9x9, 13x13 and 19x19 boards have any.
func StarPoints(cols, rows int) []game.Coord {
	if cols != rows {
		return nil
	}
	var lines []int16
	var centre int16
	switch cols {
	case 19:
		lines = []int16{3, 9, 15}
	case 13:
		lines, centre = []int16{3, 9}, 6
	case 9:
		lines, centre = []int16{2, 6}, 4
	default:
		return nil
	}

	var retVal []game.Coord
	for _, y := range lines {
		for _, x := range lines {
			retVal = append(retVal, game.Coord{X: x, Y: y})
		}
	}
	if centre != 0 {
		retVal = append(retVal, game.Coord{X: centre, Y: centre})
	}
	return retVal
}
