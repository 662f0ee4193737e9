package goban

import (
	"github.com/gorgonia/goban/game"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/gorgonia/goban/geometry"
	"github.com/gorgonia/goban/theme"
	"go.uber.org/zap"
)

// MaxCanvas bounds Options.Canvas.
const MaxCanvas = 4096

// Options configures a render. The zero value is usable: it draws every move
// of the record in the default theme on the default canvas without numbers.
type Options struct {
	Theme      string // "dark", "light" or "paper"; empty is theme.Default
	Kifu       bool   // write move numbers on the stones
	MoveNumber *int   // stop after this many moves; nil is the whole record
	Canvas     int    // width and height in pixels; 0 is geometry.DefaultCanvas

	Logger *zap.Logger // nil logs nothing
}

// DefaultOptions returns the options used when nothing is asked for.
func DefaultOptions() Options {
	return Options{
		Theme:  theme.Default,
		Canvas: geometry.DefaultCanvas,
	}
}

// Moves is a helper to fill in Options.MoveNumber.
func Moves(n int) *int { return &n }

func (o Options) limit() (int, error) {
	if o.MoveNumber == nil {
		return wq.AllMoves, nil
	}
	if *o.MoveNumber < 0 {
		return 0, &OptionError{Field: "move number", Msg: "must not be negative"}
	}
	return *o.MoveNumber, nil
}

func (o Options) canvas() (int, error) {
	switch {
	case o.Canvas == 0:
		return geometry.DefaultCanvas, nil
	case o.Canvas < 0 || o.Canvas > MaxCanvas:
		return 0, &OptionError{Field: "canvas", Msg: "must be between 1 and 4096 pixels"}
	}
	return o.Canvas, nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Result describes what was drawn.
type Result struct {
	Width, Height int // board size
	Applied       int // moves on the board; fewer than asked for when the record is shorter
	Total         int // moves on the record's main line
	Captures      [2]int
	Theme         string
}

// OutputEncoder encodes rendered frames as whatever.
//
// An example OutputEncoder is the GifEncoder. Another example would be a PNG writer.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}
