// Package sink serializes rendered symbols into image containers or
// markup and delivers them as base64 text or files.
package sink

import (
	"fmt"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ericlevine/barnode"
	"github.com/ericlevine/barnode/render"
)

// Format is an output container, named by its canonical file extension.
type Format string

const (
	PNG  Format = "png"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tif"
	JPEG Format = "jpg"
	SVG  Format = "svg"
	EPS  Format = "eps"
)

var rasterFormats = map[imaging.Format]Format{
	imaging.PNG:  PNG,
	imaging.GIF:  GIF,
	imaging.BMP:  BMP,
	imaging.TIFF: TIFF,
	imaging.JPEG: JPEG,
}

// ParseFormat resolves a format name or extension, with or without the
// leading dot. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(s, "."))
	switch Format(ext) {
	case SVG, EPS:
		return Format(ext), nil
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return "", barnode.UnsupportedFormat(s, err)
	}
	return rasterFormats[f], nil
}

// FormatFromPath infers the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", barnode.UnsupportedFormat(path, fmt.Errorf("no file extension"))
	}
	return ParseFormat(ext)
}

// Vector reports whether f is a markup format fed by the vector renderer.
func (f Format) Vector() bool {
	return f == SVG || f == EPS
}

// Kind returns the rendering path that produces f.
func (f Format) Kind() render.Kind {
	if f.Vector() {
		return render.Vector
	}
	return render.Raster
}

func (f Format) imagingFormat() (imaging.Format, bool) {
	for k, v := range rasterFormats {
		if v == f {
			return k, true
		}
	}
	return 0, false
}

// Encode writes img to w in format f. A raster image cannot be written as
// a vector format and vice versa.
func Encode(w io.Writer, img *render.Image, f Format) error {
	if img == nil {
		return barnode.Invalidf("no image to encode")
	}
	if img.Kind() != f.Kind() {
		return barnode.UnsupportedFormat(string(f),
			fmt.Errorf("%s format needs a %s image, got %s", f, f.Kind(), img.Kind()))
	}
	var err error
	switch f {
	case SVG:
		err = img.Drawing.WriteSVG(w)
	case EPS:
		err = img.Drawing.WriteEPS(w)
	default:
		imgf, ok := f.imagingFormat()
		if !ok {
			return barnode.UnsupportedFormat(string(f), nil)
		}
		err = imaging.Encode(w, img.Raster, imgf,
			imaging.PNGCompressionLevel(png.BestCompression),
			imaging.JPEGQuality(95))
	}
	if err != nil {
		return barnode.RenderFailed(string(f), err)
	}
	return nil
}
