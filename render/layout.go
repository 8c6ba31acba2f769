package render

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/ericlevine/barnode"
)

var face = basicfont.Face7x13

// layout places a symbol on a canvas measured in units, one unit per
// module edge.
type layout struct {
	unit          float64
	width, height float64

	// Dark module runs, in canvas coordinates.
	runs []rectF

	// Human-readable text, centred on textX with its top at textY.
	text      string
	textX     float64
	textY     float64
	textScale float64
}

type rectF struct{ x, y, w, h float64 }

// textScale returns the integer glyph magnification for a module size:
// the 7x13 face is drawn 1:1 below 4 units per module.
func textScale(unit float64) float64 {
	return max(1, math.Floor(unit/baseModule))
}

func newLayout(sym *barnode.Symbol, unit float64) *layout {
	l := &layout{unit: unit}
	q := float64(sym.QuietZone)
	w, h := sym.Size()
	l.width = float64(w) * unit

	if sym.Linear {
		barHeight := float64(sym.Height) * unit
		l.height = barHeight
		sym.Modules.Runs(0, func(x, n int) {
			l.runs = append(l.runs, rectF{(q + float64(x)) * unit, 0, float64(n) * unit, barHeight})
		})
		if sym.Text != "" {
			l.text = sym.Text
			l.textScale = textScale(unit)
			l.textX = l.width / 2
			l.textY = barHeight + unit
			l.height = l.textY + float64(face.Height)*l.textScale
		}
		return l
	}

	l.height = float64(h) * unit
	for y := 0; y < sym.Modules.Height(); y++ {
		sym.Modules.Runs(y, func(x, n int) {
			l.runs = append(l.runs, rectF{(q + float64(x)) * unit, (q + float64(y)) * unit, float64(n) * unit, unit})
		})
	}
	return l
}

// textWidth is the unscaled advance of s in the glyph face, in pixels.
func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}
