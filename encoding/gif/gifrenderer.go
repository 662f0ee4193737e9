package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi        = 144.0
	fontsize   = 10.0
	lineheight = 1.2

	// delays, in 100ths of a second
	frameDelay = 60
	finalDelay = 300
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

// globPalette holds the greys of the caption strip and the Plan 9 colours
// the boards are dithered into.
var globPalette = append(color.Palette{
	color.Gray{0},
	color.Gray{253},
}, palette.Plan9[:254]...)

// Encoder is a structure that encodes rendered frames into an animated GIF,
// one frame per applied move, each with a caption underneath.
type Encoder struct {
	H, W int
	font.Drawer

	out *gif.GIF
	io.Writer
	face font.Face

	padH, padW  int // padding so the caption don't start at the edge
	caption     int // height of the caption strip
	initialized bool
}

// NewGifEncoder creates an encoder that writes to w on Flush.
func NewGifEncoder(w io.Writer) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		padH: 4,
		padW: 10,

		Drawer: font.Drawer{
			Src: image.Black,
		},
		out:    &gif.GIF{LoopCount: 0},
		Writer: w,
	}
}

// Encode a frame
func (enc *Encoder) Encode(ms game.MetaState) error {
	board := ms.Image()
	if board == nil {
		return errors.Errorf("gif: %q move %d has no image", ms.Name(), ms.MoveNumber())
	}
	b := board.Bounds()

	if !enc.initialized {
		// lazy init of specifications
		enc.face = truetype.NewFace(regular, &truetype.Options{
			Size:    fontsize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		enc.Drawer.Src = image.Black
		enc.Drawer.Face = enc.face

		dy := int(math.Ceil(fontsize * lineheight * dpi / 72))
		enc.caption = dy + 2*enc.padH
		enc.W = b.Dx()
		enc.H = b.Dy() + enc.caption
		enc.initialized = true
	}
	if b.Dx() != enc.W || b.Dy()+enc.caption != enc.H {
		return errors.Errorf("gif: frame of %dx%d does not match the first frame's %dx%d", b.Dx(), b.Dy(), enc.W, enc.H-enc.caption)
	}

	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	draw.FloydSteinberg.Draw(im, image.Rect(0, 0, enc.W, b.Dy()), board, b.Min)

	enc.Dst = im
	enc.Dot = fixed.P(enc.padW, b.Dy()+enc.padH+enc.face.Metrics().Ascent.Ceil())
	enc.DrawString(caption(ms))

	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, frameDelay)
	return nil
}

func caption(ms game.MetaState) string {
	if ms.Name() == "" {
		return fmt.Sprintf("Move %d", ms.MoveNumber())
	}
	return fmt.Sprintf("%s, move %d", ms.Name(), ms.MoveNumber())
}

// Flush writes the gif into the writer. The last frame is held longer.
func (enc *Encoder) Flush() error {
	if len(enc.out.Image) == 0 {
		return errors.New("gif: nothing to encode")
	}
	enc.out.Delay[len(enc.out.Delay)-1] = finalDelay
	return errors.WithStack(gif.EncodeAll(enc.Writer, enc.out))
}
