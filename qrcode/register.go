package qrcode

import "github.com/ericlevine/barnode"

// Options: option1 selects the error correction level (1-4 for L, M, Q, H),
// option2 forces a version (1-40) and option3 forces a mask (1-8 for
// patterns 0-7).
func encodeSymbol(text string, opts barnode.Options) (*barnode.Symbol, error) {
	level := LevelL
	switch v := opts.Option1; {
	case v == barnode.Unset:
	case v >= 1 && v <= 4:
		level = Level(v - 1)
	default:
		return nil, barnode.InvalidOption("QR Code option1 (ECC level) must be 1-4, got %d", v)
	}
	forcedVersion := 0
	switch v := opts.Option2; {
	case v == barnode.Unset:
	case v >= 1 && v <= 40:
		forcedVersion = v
	default:
		return nil, barnode.InvalidOption("QR Code option2 (version) must be 1-40, got %d", v)
	}
	forcedMask := -1
	switch v := opts.Option3; {
	case v == barnode.Unset:
	case v >= 1 && v <= 8:
		forcedMask = v - 1
	default:
		return nil, barnode.InvalidOption("QR Code option3 (mask) must be 1-8, got %d", v)
	}

	eci, data, err := barnode.TextBytes("QR Code", text, opts.ECI)
	if err != nil {
		return nil, err
	}
	c, err := encode(data, eci, level, forcedVersion, forcedMask)
	if err != nil {
		return nil, err
	}
	return &barnode.Symbol{Modules: c.modules}, nil
}

func init() {
	barnode.Register(&barnode.Descriptor{
		Symbology: barnode.SymbologyQRCode,
		Name:      "QR Code",
		Charset:   barnode.Unicode,
		MinLength: 1,
		MaxLength: 7089,
		Checksum:  barnode.ChecksumMandatory,
		QuietZone: 4,
		Encoder:   barnode.EncoderFunc(encodeSymbol),
	})
}
