package render

import (
	"image"

	"github.com/gorgonia/goban/game"
)

// Frame is a rendered board ready for an output encoder.
type Frame struct {
	name  string
	moves int
	img   image.Image
}

// NewFrame wraps img, the board after moves applied moves of the named record.
func NewFrame(name string, moves int, img image.Image) *Frame {
	return &Frame{name: name, moves: moves, img: img}
}

func (f *Frame) Name() string       { return f.name }
func (f *Frame) MoveNumber() int    { return f.moves }
func (f *Frame) Image() image.Image { return f.img }

var _ game.MetaState = (*Frame)(nil)
