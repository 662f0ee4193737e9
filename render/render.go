// Package render draws a replayed position onto a raster canvas.
package render

import (
	"image"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/goban/game"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/gorgonia/goban/geometry"
	"github.com/gorgonia/goban/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
)

var numbers *truetype.Font

func init() {
	var err error
	if numbers, err = truetype.Parse(gomonobold.TTF); err != nil {
		panic(err)
	}
}

const (
	// numbers of this many digits or more are shrunk to stay inside the stone
	longNumber  = 3
	longShrink  = 0.8
	numberDrop  = 0.35 // vertical anchor of move numbers, 0.5 would sit low
	haloDivisor = 18.0 // halo offset is radius/haloDivisor pixels, at least one
)

// Renderer draws positions in one theme. A Renderer holds no per call state
// and may be shared.
type Renderer struct {
	Theme theme.Theme
}

// New creates a Renderer for the given theme.
func New(t theme.Theme) *Renderer { return &Renderer{Theme: t} }

// Render draws pos laid out by tbl. When kifu is set every stone still on the
// board carries the number of the move that placed it.
//
// The output depends on nothing but the arguments.
func (r *Renderer) Render(pos *wq.Position, tbl *geometry.Table, kifu bool) image.Image {
	dc := gg.NewContext(tbl.CanvasW, tbl.CanvasH)
	r.background(dc)
	r.grid(dc, tbl)
	r.stars(dc, tbl)
	r.stones(dc, pos, tbl)
	if kifu {
		r.numbers(dc, pos, tbl)
	}
	return dc.Image()
}

func (r *Renderer) background(dc *gg.Context) {
	dc.SetColor(r.Theme.Background)
	dc.Clear()
}

// grid strokes the inner lines first intersection to last, then the outer
// frame as one closed path so its corners join without overshoot.
func (r *Renderer) grid(dc *gg.Context, tbl *geometry.Table) {
	dc.SetColor(r.Theme.Grid)
	dc.SetLineWidth(float64(tbl.LineWidth) * r.Theme.GridScale)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinRound)

	x0, y0 := tbl.Point(0, 0)
	x1, y1 := tbl.Point(tbl.Cols-1, tbl.Rows-1)
	for row := 1; row < tbl.Rows-1; row++ {
		_, y := tbl.Point(0, row)
		dc.DrawLine(float64(x0), float64(y), float64(x1), float64(y))
		dc.Stroke()
	}
	for col := 1; col < tbl.Cols-1; col++ {
		x, _ := tbl.Point(col, 0)
		dc.DrawLine(float64(x), float64(y0), float64(x), float64(y1))
		dc.Stroke()
	}
	dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0))
	dc.Stroke()
}

func (r *Renderer) stars(dc *gg.Context, tbl *geometry.Table) {
	dc.SetColor(r.Theme.Star)
	for _, c := range tbl.StarPoints() {
		x, y := tbl.At(c)
		dc.DrawCircle(float64(x), float64(y), float64(tbl.StarRadius))
		dc.Fill()
	}
}

func (r *Renderer) stones(dc *gg.Context, pos *wq.Position, tbl *geometry.Table) {
	cols, rows := pos.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := game.Coord{X: int16(x), Y: int16(y)}
			colour := pos.At(c)
			if colour == game.None {
				continue
			}
			cx, cy := tbl.At(c)
			r.stone(dc, r.Theme.Stone(colour), float64(cx), float64(cy), float64(tbl.Radius))
		}
	}
}

func (r *Renderer) stone(dc *gg.Context, s theme.Stone, x, y, radius float64) {
	dc.DrawCircle(x, y, radius)
	if s.Gradient {
		// light falls from the upper left
		g := gg.NewRadialGradient(x-radius/3, y-radius/3, radius/10, x, y, radius)
		g.AddColorStop(0, s.Highlight)
		g.AddColorStop(0.65, s.Fill)
		g.AddColorStop(1, s.Shadow)
		dc.SetFillStyle(g)
	} else {
		dc.SetColor(s.Fill)
	}
	if s.OutlineWidth <= 0 {
		dc.Fill()
		return
	}
	dc.FillPreserve()
	w := s.OutlineWidth * radius
	dc.SetColor(s.Outline)
	dc.SetLineWidth(w)
	dc.ClearPath()
	// keep the stroke inside the stone's radius
	dc.DrawCircle(x, y, radius-w/2)
	dc.Stroke()
}

func (r *Renderer) numbers(dc *gg.Context, pos *wq.Position, tbl *geometry.Table) {
	radius := float64(tbl.Radius)
	size := radius * r.Theme.FontScale
	short := face(size)
	long := face(size * longShrink)
	defer short.Close()
	defer long.Close()

	halo := radius / haloDivisor
	if halo < 1 {
		halo = 1
	}

	cols, rows := pos.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := game.Coord{X: int16(x), Y: int16(y)}
			n := pos.NumberAt(c)
			if n == 0 {
				continue
			}
			text := strconv.Itoa(n)
			if len(text) >= longNumber {
				dc.SetFontFace(long)
			} else {
				dc.SetFontFace(short)
			}
			cx, cy := tbl.At(c)
			s := r.Theme.Stone(pos.At(c))
			drawNumber(dc, text, float64(cx), float64(cy), halo, s.Number, s.NumberOutline)
		}
	}
}

func drawNumber(dc *gg.Context, text string, x, y, halo float64, fg, bg color.Color) {
	dc.SetColor(bg)
	for _, d := range [4][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		dc.DrawStringAnchored(text, x+d[0]*halo, y+d[1]*halo, 0.5, numberDrop)
	}
	dc.SetColor(fg)
	dc.DrawStringAnchored(text, x, y, 0.5, numberDrop)
}

// face returns a fresh Go Mono Bold face. Faces are not safe for concurrent use.
func face(size float64) font.Face {
	return truetype.NewFace(numbers, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
}
