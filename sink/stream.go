package sink

import (
	"bytes"
	"encoding/base64"

	"github.com/ericlevine/barnode/render"
)

// ToStream encodes img in format f and returns it base64 encoded with the
// standard alphabet.
func ToStream(img *render.Image, f Format) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
