// Package barnode encodes text into barcode symbols and describes the
// symbologies it knows about.
//
// Symbology encoders live in subpackages (oned, qrcode, datamatrix, aztec) and
// register themselves with this package when imported. Package generate
// imports all of them and offers the stream and file entry points.
package barnode

import "github.com/ericlevine/barnode/bitutil"

// Symbology identifies a barcode standard. Values follow the zint numbering.
type Symbology int

const (
	SymbologyITF        Symbology = 3
	SymbologyCode39     Symbology = 8
	SymbologyExtCode39  Symbology = 9
	SymbologyEAN        Symbology = 13
	SymbologyCodabar    Symbology = 18
	SymbologyCode128    Symbology = 20
	SymbologyCode93     Symbology = 25
	SymbologyUPCA       Symbology = 34
	SymbologyUPCE       Symbology = 37
	SymbologyQRCode     Symbology = 58
	SymbologyDataMatrix Symbology = 71
	SymbologyAztec      Symbology = 92
)

// String returns the name of the symbology.
func (s Symbology) String() string {
	switch s {
	case SymbologyITF:
		return "ITF"
	case SymbologyCode39:
		return "CODE_39"
	case SymbologyExtCode39:
		return "EXT_CODE_39"
	case SymbologyEAN:
		return "EAN"
	case SymbologyCodabar:
		return "CODABAR"
	case SymbologyCode128:
		return "CODE_128"
	case SymbologyCode93:
		return "CODE_93"
	case SymbologyUPCA:
		return "UPC_A"
	case SymbologyUPCE:
		return "UPC_E"
	case SymbologyQRCode:
		return "QR_CODE"
	case SymbologyDataMatrix:
		return "DATA_MATRIX"
	case SymbologyAztec:
		return "AZTEC"
	default:
		return "UNKNOWN"
	}
}

// Symbol is an encoded barcode ready for rendering. Linear symbols have a
// single module row that is stretched to Height modules; matrix symbols use
// every row of Modules as-is.
type Symbol struct {
	Symbology Symbology

	// Modules holds dark (set) and light modules, without quiet zone.
	Modules *bitutil.BitMatrix

	// Linear is true for 1-D symbologies.
	Linear bool

	// Height is the bar height in modules. Zero for matrix symbols.
	Height int

	// QuietZone is the light margin on every side, in modules. Linear
	// symbols only apply it horizontally.
	QuietZone int

	// Text is the human-readable row, empty when it should not be drawn.
	Text string
}

// Size returns the symbol's extent in modules, quiet zone included.
func (s *Symbol) Size() (width, height int) {
	width = s.Modules.Width() + 2*s.QuietZone
	if s.Linear {
		return width, s.Height
	}
	return width, s.Modules.Height() + 2*s.QuietZone
}
