package datamatrix

import "github.com/ericlevine/barnode"

// Options: option2 forces a size (1-30, see symbols), option3 = 100
// restricts automatic selection to square sizes.
func encodeSymbol(text string, opts barnode.Options) (*barnode.Symbol, error) {
	if err := opts.RequireUnset("Data Matrix", 1); err != nil {
		return nil, err
	}
	size := 0
	switch v := opts.Option2; {
	case v == barnode.Unset:
	case v >= 1 && v <= len(symbols):
		size = v
	default:
		return nil, barnode.InvalidOption("Data Matrix option2 (size) must be 1-%d, got %d", len(symbols), v)
	}
	square := false
	switch opts.Option3 {
	case barnode.Unset:
	case squareOnly:
		square = true
	default:
		return nil, barnode.InvalidOption("Data Matrix option3 must be %d (square only), got %d", squareOnly, opts.Option3)
	}

	eci, data, err := barnode.TextBytes("Data Matrix", text, opts.ECI)
	if err != nil {
		return nil, err
	}
	m, _, err := encode(data, eci, size, square)
	if err != nil {
		return nil, err
	}
	return &barnode.Symbol{Modules: m}, nil
}

func init() {
	barnode.Register(&barnode.Descriptor{
		Symbology: barnode.SymbologyDataMatrix,
		Name:      "Data Matrix",
		Charset:   barnode.Unicode,
		MinLength: 1,
		MaxLength: 3116,
		Checksum:  barnode.ChecksumMandatory,
		QuietZone: 1,
		Encoder:   barnode.EncoderFunc(encodeSymbol),
	})
}
