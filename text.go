package barnode

import (
	"errors"

	"github.com/ericlevine/barnode/charset"
)

// TextBytes converts text into the byte data of a matrix symbology using
// the requested ECI (0 for automatic selection). The returned ECI is nil
// when the data needs no designator.
func TextBytes(name, text string, eci int) (*charset.ECI, []byte, error) {
	e, data, err := charset.Select(text, eci)
	if err == nil {
		return e, data, nil
	}
	var ue *charset.UnencodableError
	switch {
	case errors.As(err, &ue):
		return nil, nil, InvalidCharacter(ue.Char, ue.Position, ue.Charset)
	case errors.Is(err, charset.ErrUnknownECI):
		return nil, nil, InvalidOption("%s does not support ECI %d", name, eci)
	}
	return nil, nil, err
}
