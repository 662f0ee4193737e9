package gif

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/gorgonia/goban/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func board(c color.Color) image.Image {
	im := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			im.Set(x, y, c)
		}
	}
	return im
}

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewGifEncoder(&buf)
	for i, c := range []color.Color{color.White, color.Black, color.White} {
		require.NoError(t, enc.Encode(render.NewFrame("game", i, board(c))))
	}
	require.NoError(t, enc.Flush())

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, g.Image, 3)
	assert.Equal(t, []int{frameDelay, frameDelay, finalDelay}, g.Delay)

	b := g.Image[0].Bounds()
	assert.Equal(t, 64, b.Dx())
	assert.Greater(t, b.Dy(), 64, "caption strip below the board")

	// the board is copied, the caption has ink on it
	r, _, _, _ := g.Image[1].At(10, 10).RGBA()
	assert.Zero(t, r)
	ink := false
	for y := 64; y < b.Dy() && !ink; y++ {
		for x := 0; x < b.Dx(); x++ {
			if r, _, _, _ := g.Image[0].At(x, y).RGBA(); r == 0 {
				ink = true
				break
			}
		}
	}
	assert.True(t, ink)
}

func TestEncoder_Errors(t *testing.T) {
	var buf bytes.Buffer
	enc := NewGifEncoder(&buf)
	assert.Error(t, enc.Flush())
	require.NoError(t, enc.Encode(render.NewFrame("", 0, board(color.White))))
	assert.Error(t, enc.Encode(render.NewFrame("", 1, image.NewRGBA(image.Rect(0, 0, 10, 10)))))
	assert.Error(t, enc.Encode(render.NewFrame("", 1, nil)))
}

func TestCaption(t *testing.T) {
	assert.Equal(t, "Move 3", caption(render.NewFrame("", 3, nil)))
	assert.Equal(t, "Game 4, move 78", caption(render.NewFrame("Game 4", 78, nil)))
}
