package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
)

// WriteSVG serializes the drawing as a standalone SVG document.
func (d *Drawing) WriteSVG(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(d.Width), num(d.Height), num(d.Width), num(d.Height))
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%s" height="%s"%s/>`+"\n", num(d.Width), num(d.Height), fill(d.Background))
	if len(d.Rects) > 0 {
		fmt.Fprintf(&buf, "  <g%s>\n", fill(d.Foreground))
		for _, r := range d.Rects {
			fmt.Fprintf(&buf, `    <rect x="%s" y="%s" width="%s" height="%s"/>`+"\n", num(r.X), num(r.Y), num(r.W), num(r.H))
		}
		buf.WriteString("  </g>\n")
	}
	for _, t := range d.Texts {
		fmt.Fprintf(&buf, `  <text x="%s" y="%s" text-anchor="middle" font-family="monospace" font-size="%s"%s`,
			num(t.X), num(t.Y), num(t.Size), fill(d.Foreground))
		if t.Rotation != 0 {
			fmt.Fprintf(&buf, ` transform="rotate(%d %s %s)"`, t.Rotation, num(t.X), num(t.Y))
		}
		buf.WriteString(">")
		if err := xml.EscapeText(&buf, []byte(t.Content)); err != nil {
			return err
		}
		buf.WriteString("</text>\n")
	}
	buf.WriteString("</svg>\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fill returns the fill attributes for c, with an opacity only when c is
// not opaque.
func fill(c color.NRGBA) string {
	s := fmt.Sprintf(` fill="#%02x%02x%02x"`, c.R, c.G, c.B)
	if c.A != 0xff {
		s += fmt.Sprintf(` fill-opacity="%s"`, strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64))
	}
	return s
}
