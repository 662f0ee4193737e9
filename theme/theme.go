// Package theme holds the named colour schemes a board can be drawn with.
package theme

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/gorgonia/goban/game"
)

// Default is used when no theme is asked for.
const Default = "dark"

// Stone describes how one colour of stone is painted.
type Stone struct {
	Fill      color.RGBA
	Highlight color.RGBA // centre of the radial gradient
	Shadow    color.RGBA // rim of the radial gradient
	Gradient  bool       // flat Fill when false

	Outline      color.RGBA
	OutlineWidth float64 // fraction of the stone radius; 0 draws no outline

	Number        color.RGBA // move number text
	NumberOutline color.RGBA // halo drawn behind the text
}

// Theme is a closed, immutable set of paint parameters.
type Theme struct {
	Name string

	Background color.RGBA
	Grid       color.RGBA
	GridScale  float64 // multiplies the geometry's line width
	Star       color.RGBA

	Black, White Stone

	// FontScale sizes move numbers as a fraction of the stone radius. Numbers
	// of three digits are shrunk further by the renderer.
	FontScale float64
}

// Stone returns the paint for a colour. None yields the zero Stone.
func (t Theme) Stone(c game.Colour) Stone {
	switch c {
	case game.Black:
		return t.Black
	case game.White:
		return t.White
	}
	return Stone{}
}

// UnknownError is returned by Lookup for a name that is not in the catalog.
type UnknownError struct {
	Name string
}

func (err *UnknownError) Error() string {
	return fmt.Sprintf("theme: unknown theme %q (want one of %s)", err.Name, strings.Join(Names(), ", "))
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{r, g, b, 0xff} }

var catalog = map[string]Theme{
	"dark": {
		Name:       "dark",
		Background: rgb(0x2b, 0x2b, 0x2e),
		Grid:       rgb(0x9a, 0x9a, 0x9a),
		GridScale:  1,
		Star:       rgb(0xb0, 0xb0, 0xb0),
		Black: Stone{
			Fill:          rgb(0x10, 0x10, 0x12),
			Highlight:     rgb(0x5c, 0x5c, 0x62),
			Shadow:        rgb(0x00, 0x00, 0x00),
			Gradient:      true,
			Number:        rgb(0xf0, 0xf0, 0xf0),
			NumberOutline: rgb(0x00, 0x00, 0x00),
		},
		White: Stone{
			Fill:          rgb(0xd8, 0xd8, 0xd4),
			Highlight:     rgb(0xff, 0xff, 0xff),
			Shadow:        rgb(0x8c, 0x8c, 0x88),
			Gradient:      true,
			Number:        rgb(0x10, 0x10, 0x10),
			NumberOutline: rgb(0xff, 0xff, 0xff),
		},
		FontScale: 1.2,
	},
	"light": {
		Name:       "light",
		Background: rgb(0xdc, 0xb3, 0x5c),
		Grid:       rgb(0x3a, 0x2a, 0x10),
		GridScale:  1,
		Star:       rgb(0x3a, 0x2a, 0x10),
		Black: Stone{
			Fill:          rgb(0x18, 0x18, 0x18),
			Highlight:     rgb(0x6a, 0x6a, 0x6a),
			Shadow:        rgb(0x00, 0x00, 0x00),
			Gradient:      true,
			Number:        rgb(0xff, 0xff, 0xff),
			NumberOutline: rgb(0x00, 0x00, 0x00),
		},
		White: Stone{
			Fill:          rgb(0xf2, 0xf2, 0xee),
			Highlight:     rgb(0xff, 0xff, 0xff),
			Shadow:        rgb(0xa8, 0xa8, 0xa0),
			Gradient:      true,
			Number:        rgb(0x00, 0x00, 0x00),
			NumberOutline: rgb(0xff, 0xff, 0xff),
		},
		FontScale: 1.2,
	},
	"paper": {
		Name:       "paper",
		Background: rgb(0xff, 0xff, 0xff),
		Grid:       rgb(0x00, 0x00, 0x00),
		GridScale:  1,
		Star:       rgb(0x00, 0x00, 0x00),
		Black: Stone{
			Fill:          rgb(0x00, 0x00, 0x00),
			Number:        rgb(0xff, 0xff, 0xff),
			NumberOutline: rgb(0x00, 0x00, 0x00),
		},
		White: Stone{
			Fill:          rgb(0xff, 0xff, 0xff),
			Outline:       rgb(0x00, 0x00, 0x00),
			OutlineWidth:  0.06,
			Number:        rgb(0x00, 0x00, 0x00),
			NumberOutline: rgb(0xff, 0xff, 0xff),
		},
		FontScale: 1.2,
	},
}

// Lookup returns the named theme. The empty name is the Default theme.
func Lookup(name string) (Theme, error) {
	if name == "" {
		name = Default
	}
	t, ok := catalog[name]
	if !ok {
		return Theme{}, &UnknownError{Name: name}
	}
	return t, nil
}

// Names lists the catalog, sorted.
func Names() []string {
	retVal := make([]string, 0, len(catalog))
	for k := range catalog {
		retVal = append(retVal, k)
	}
	sort.Strings(retVal)
	return retVal
}
