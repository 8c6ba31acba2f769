package render

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func rasterize(l *layout, opts Options) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(l.width), int(l.height)))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	fg := image.NewUniform(opts.Foreground)
	for _, r := range l.runs {
		draw.Draw(img, image.Rect(int(r.x), int(r.y), int(r.x+r.w), int(r.y+r.h)), fg, image.Point{}, draw.Src)
	}
	if l.text != "" {
		drawText(img, l, fg)
	}
	return rotate(img, opts.Rotation)
}

// drawText renders the text row into a glyph mask, magnifies it with
// nearest-neighbour scaling and composites it in the foreground colour.
func drawText(dst draw.Image, l *layout, src image.Image) {
	w := textWidth(l.text)
	if w <= 0 {
		return
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, face.Height))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(l.text)

	s := int(l.textScale)
	scaled := image.NewAlpha(image.Rect(0, 0, w*s, face.Height*s))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), mask, mask.Bounds(), draw.Src, nil)

	x := int(l.textX) - w*s/2
	y := int(l.textY)
	r := image.Rect(x, y, x+w*s, y+face.Height*s)
	draw.DrawMask(dst, r, src, image.Point{}, scaled, image.Point{}, draw.Over)
}

// rotate turns img clockwise by degrees. imaging rotates counter-clockwise.
func rotate(img *image.NRGBA, degrees int) *image.NRGBA {
	switch degrees {
	case 90:
		return imaging.Rotate270(img)
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate90(img)
	}
	return img
}
