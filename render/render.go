// Package render turns encoded symbols into raster images or vector
// drawings. Raster output is an *image.NRGBA; vector output is a list of
// rectangle and text primitives that serialize to SVG or EPS.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/ericlevine/barnode"
)

// Kind selects the rendering path.
type Kind int

const (
	Raster Kind = iota
	Vector
)

func (k Kind) String() string {
	switch k {
	case Raster:
		return "raster"
	case Vector:
		return "vector"
	}
	return "unknown"
}

// baseModule is the module size in pixels at scale 1.
const baseModule = 2

// MaxPixels bounds the area of a raster render, rotation aside.
const MaxPixels = 64 << 20

// Options carries the presentation settings of a render.
type Options struct {
	Foreground color.NRGBA
	Background color.NRGBA
	Scale      float64
	Rotation   int // clockwise degrees: 0, 90, 180 or 270
}

// NewOptions extracts the render options from cfg.
func NewOptions(cfg barnode.Config) (Options, error) {
	fg, bg, err := cfg.Colors()
	if err != nil {
		return Options{}, err
	}
	return Options{Foreground: fg, Background: bg, Scale: cfg.Scale, Rotation: cfg.Rotation}, nil
}

// ModuleSize returns the raster module size in pixels: round(2·scale),
// at least 1.
func (o Options) ModuleSize() int {
	return max(1, int(math.Round(baseModule*o.Scale)))
}

func (o Options) validate() error {
	if !(o.Scale > 0) || math.IsInf(o.Scale, 1) {
		return barnode.Invalidf("scale must be positive and finite, got %g", o.Scale)
	}
	switch o.Rotation {
	case 0, 90, 180, 270:
		return nil
	}
	return barnode.Invalidf("rotation must be 0, 90, 180 or 270, got %d", o.Rotation)
}

// Image is a rendered symbol. Exactly one of Raster and Drawing is set.
type Image struct {
	Raster  *image.NRGBA
	Drawing *Drawing
}

// Kind reports which rendering path produced img.
func (img *Image) Kind() Kind {
	if img.Drawing != nil {
		return Vector
	}
	return Raster
}

// Render draws sym on the path selected by kind.
func Render(sym *barnode.Symbol, kind Kind, opts Options) (*Image, error) {
	if sym == nil || sym.Modules == nil {
		return nil, barnode.Invalidf("no symbol to render")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	switch kind {
	case Raster:
		l := newLayout(sym, float64(opts.ModuleSize()))
		if l.width*l.height > MaxPixels {
			return nil, barnode.Invalidf("raster of %.0fx%.0f pixels exceeds the limit of %d", l.width, l.height, MaxPixels)
		}
		return &Image{Raster: rasterize(l, opts)}, nil
	case Vector:
		return &Image{Drawing: vectorize(sym, opts)}, nil
	}
	return nil, barnode.UnsupportedFormat(kind.String(), nil)
}
