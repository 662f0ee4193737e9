// Package png encodes the last rendered frame of a record as a PNG image.
package png

import (
	"image"
	"image/png"
	"io"

	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
)

// Encoder keeps the most recent frame it is given and writes it out on Flush.
type Encoder struct {
	io.Writer

	png.Encoder
	last  image.Image
	name  string
	moves int
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		Writer:  w,
		Encoder: png.Encoder{CompressionLevel: png.DefaultCompression},
	}
}

// Encode records a frame.
func (enc *Encoder) Encode(ms game.MetaState) error {
	img := ms.Image()
	if img == nil {
		return errors.Errorf("png: %q move %d has no image", ms.Name(), ms.MoveNumber())
	}
	enc.last = img
	enc.name = ms.Name()
	enc.moves = ms.MoveNumber()
	return nil
}

// Flush writes the last recorded frame.
func (enc *Encoder) Flush() error {
	if enc.last == nil {
		return errors.New("png: nothing to encode")
	}
	if err := enc.Encoder.Encode(enc.Writer, enc.last); err != nil {
		return errors.Wrapf(err, "png: encoding %q at move %d", enc.name, enc.moves)
	}
	return nil
}
