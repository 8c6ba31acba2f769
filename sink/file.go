package sink

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/ericlevine/barnode"
	"github.com/ericlevine/barnode/render"
)

// ToFile writes img to path in the format named by its extension. The data
// goes to a temporary file in the same directory that is renamed over path
// once complete, so readers never observe a partial file and a failed write
// leaves path untouched.
func ToFile(img *render.Image, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}

func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return barnode.WriteFailed(path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return barnode.WriteFailed(path, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return barnode.WriteFailed(path, err)
	}
	if err = tmp.Sync(); err != nil {
		return barnode.WriteFailed(path, err)
	}
	if err = tmp.Close(); err != nil {
		return barnode.WriteFailed(path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return barnode.WriteFailed(path, err)
	}
	return nil
}
