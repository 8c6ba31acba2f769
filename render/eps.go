package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
)

// WriteEPS serializes the drawing as Encapsulated PostScript. PostScript
// has no transparency, so colour alpha is ignored.
func (d *Drawing) WriteEPS(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
	buf.WriteString("%%Creator: barnode\n")
	fmt.Fprintf(&buf, "%%%%BoundingBox: 0 0 %d %d\n", int(math.Ceil(d.Width)), int(math.Ceil(d.Height)))
	fmt.Fprintf(&buf, "%%%%HiResBoundingBox: 0 0 %s %s\n", num(d.Width), num(d.Height))
	buf.WriteString("%%Pages: 0\n%%EndComments\n")

	fmt.Fprintf(&buf, "%s setrgbcolor\n", rgb(d.Background))
	fmt.Fprintf(&buf, "0 0 %s %s rectfill\n", num(d.Width), num(d.Height))
	fmt.Fprintf(&buf, "%s setrgbcolor\n", rgb(d.Foreground))
	for _, r := range d.Rects {
		fmt.Fprintf(&buf, "%s %s %s %s rectfill\n", num(r.X), num(d.Height-r.Y-r.H), num(r.W), num(r.H))
	}
	for _, t := range d.Texts {
		fmt.Fprintf(&buf, "/Courier findfont %s scalefont setfont\n", num(t.Size))
		fmt.Fprintf(&buf, "gsave %s %s translate %d rotate\n", num(t.X), num(d.Height-t.Y), -t.Rotation)
		fmt.Fprintf(&buf, "(%s) dup stringwidth pop 2 div neg 0 moveto show\ngrestore\n", psString(t.Content))
	}
	buf.WriteString("showpage\n%%EOF\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func rgb(c color.NRGBA) string {
	f := func(v uint8) string { return strconv.FormatFloat(float64(v)/255, 'f', 4, 64) }
	return f(c.R) + " " + f(c.G) + " " + f(c.B)
}

// psString escapes s for a PostScript string literal. Bytes outside
// printable ASCII are written as octal escapes.
func psString(s string) string {
	var b bytes.Buffer
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(' || c == ')' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(&b, "\\%03o", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
