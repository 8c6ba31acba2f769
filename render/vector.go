package render

import (
	"image/color"

	"github.com/ericlevine/barnode"
)

// Rect is a filled rectangle in drawing coordinates (y down).
type Rect struct {
	X, Y, W, H float64
}

// Text is a line of text centred horizontally on X with its baseline at Y,
// turned clockwise by Rotation degrees around that anchor.
type Text struct {
	X, Y     float64
	Size     float64
	Rotation int
	Content  string
}

// Drawing is a resolution independent rendering of a symbol.
type Drawing struct {
	Width, Height float64
	Foreground    color.NRGBA
	Background    color.NRGBA
	Rects         []Rect
	Texts         []Text
}

func vectorize(sym *barnode.Symbol, opts Options) *Drawing {
	l := newLayout(sym, baseModule*opts.Scale)
	d := &Drawing{
		Width:      l.width,
		Height:     l.height,
		Foreground: opts.Foreground,
		Background: opts.Background,
		Rects:      make([]Rect, 0, len(l.runs)),
	}
	for _, r := range l.runs {
		d.Rects = append(d.Rects, Rect{r.x, r.y, r.w, r.h})
	}
	if l.text != "" {
		size := float64(face.Height) * l.textScale
		d.Texts = append(d.Texts, Text{
			X:       l.textX,
			Y:       l.textY + float64(face.Ascent)*l.textScale,
			Size:    size,
			Content: l.text,
		})
	}
	d.rotate(opts.Rotation)
	return d
}

// rotate turns the drawing clockwise by degrees about its origin and
// moves it back into the positive quadrant.
func (d *Drawing) rotate(degrees int) {
	w, h := d.Width, d.Height
	point := func(x, y float64) (float64, float64) {
		switch degrees {
		case 90:
			return h - y, x
		case 180:
			return w - x, h - y
		case 270:
			return y, w - x
		}
		return x, y
	}
	if degrees == 0 {
		return
	}
	for i, r := range d.Rects {
		// Transform two opposite corners and normalize.
		x1, y1 := point(r.X, r.Y)
		x2, y2 := point(r.X+r.W, r.Y+r.H)
		d.Rects[i] = Rect{min(x1, x2), min(y1, y2), abs(x2 - x1), abs(y2 - y1)}
	}
	for i, t := range d.Texts {
		d.Texts[i].X, d.Texts[i].Y = point(t.X, t.Y)
		d.Texts[i].Rotation = (t.Rotation + degrees) % 360
	}
	if degrees != 180 {
		d.Width, d.Height = h, w
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
