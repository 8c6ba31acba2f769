package oned

import "github.com/ericlevine/barnode"

func linear(s barnode.Symbology, name string, charset barnode.CharClass, maxLen int, check barnode.Checksum, enc barnode.EncoderFunc) *barnode.Descriptor {
	return &barnode.Descriptor{
		Symbology: s,
		Name:      name,
		Charset:   charset,
		MinLength: 1,
		MaxLength: maxLen,
		Checksum:  check,
		Linear:    true,
		BarHeight: barHeight,
		QuietZone: quietZone,
		Encoder:   enc,
	}
}

func init() {
	barnode.Register(linear(barnode.SymbologyITF, "Interleaved 2 of 5", barnode.Digits, 125, barnode.ChecksumOptional, encodeITF))
	barnode.Register(linear(barnode.SymbologyCode39, "Code 39", Code39Charset, 86, barnode.ChecksumOptional, encodeCode39))
	barnode.Register(linear(barnode.SymbologyExtCode39, "Extended Code 39", barnode.ASCII, 86, barnode.ChecksumOptional, encodeExtCode39))
	barnode.Register(linear(barnode.SymbologyEAN, "EAN", barnode.Digits, 13, barnode.ChecksumMandatory, encodeEAN))
	barnode.Register(linear(barnode.SymbologyCodabar, "Codabar", CodabarCharset, 103, barnode.ChecksumOptional, encodeCodabar))
	barnode.Register(linear(barnode.SymbologyCode128, "Code 128", barnode.ASCII, 160, barnode.ChecksumMandatory, encodeCode128))
	barnode.Register(linear(barnode.SymbologyCode93, "Code 93", barnode.ASCII, 123, barnode.ChecksumMandatory, encodeCode93))
	barnode.Register(linear(barnode.SymbologyUPCA, "UPC-A", barnode.Digits, 12, barnode.ChecksumMandatory, encodeUPCA))
	barnode.Register(linear(barnode.SymbologyUPCE, "UPC-E", barnode.Digits, 8, barnode.ChecksumMandatory, encodeUPCE))
}
