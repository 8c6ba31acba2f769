package aztec

import "github.com/ericlevine/barnode"

// Options: option1 sets the minimum error correction share in percent
// (1-99, default 33). option2 forces a size: 1-4 are compact symbols with
// that many layers, 5-36 full-range symbols with 1-32 layers.
func encodeSymbol(text string, opts barnode.Options) (*barnode.Symbol, error) {
	if err := opts.RequireUnset("Aztec Code", 3); err != nil {
		return nil, err
	}
	ecPercent := defaultECPercent
	switch v := opts.Option1; {
	case v == barnode.Unset:
	case v >= 1 && v <= 99:
		ecPercent = v
	default:
		return nil, barnode.InvalidOption("Aztec Code option1 (error correction percent) must be 1-99, got %d", v)
	}
	var forced shape
	switch v := opts.Option2; {
	case v == barnode.Unset:
	case v >= 1 && v <= maxCompactLayers:
		forced = shape{compact: true, layers: v}
	case v > maxCompactLayers && v <= maxCompactLayers+maxLayers:
		forced = shape{layers: v - maxCompactLayers}
	default:
		return nil, barnode.InvalidOption("Aztec Code option2 (size) must be 1-%d, got %d", maxCompactLayers+maxLayers, v)
	}

	eci, data, err := barnode.TextBytes("Aztec Code", text, opts.ECI)
	if err != nil {
		return nil, err
	}
	s, err := encode(data, eci, ecPercent, forced)
	if err != nil {
		return nil, err
	}
	return &barnode.Symbol{Modules: s.modules}, nil
}

func init() {
	barnode.Register(&barnode.Descriptor{
		Symbology: barnode.SymbologyAztec,
		Name:      "Aztec Code",
		Charset:   barnode.Unicode,
		MinLength: 1,
		MaxLength: 3832,
		Checksum:  barnode.ChecksumMandatory,
		QuietZone: 1,
		Encoder:   barnode.EncoderFunc(encodeSymbol),
	})
}
