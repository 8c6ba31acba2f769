// Package datamatrix encodes Data Matrix ECC 200 symbols.
package datamatrix

import (
	"github.com/ericlevine/barnode"
	"github.com/ericlevine/barnode/bitutil"
	"github.com/ericlevine/barnode/charset"
	"github.com/ericlevine/barnode/reedsolomon"
)

const squareOnly = 100 // option3 value restricting selection to square sizes

var rsEncoder = reedsolomon.NewEncoder(reedsolomon.DataMatrixField256)

// codewords returns the unpadded data codewords for data with an optional
// leading ECI designator.
func codewords(data []byte, eci *charset.ECI) []byte {
	var out []byte
	if eci != nil {
		out = eciCodewords(eci.Value)
	}
	return append(out, encodeASCII(data)...)
}

// withEC appends the interleaved error correction codewords. Data
// codeword i belongs to block i mod blockCount.
func withEC(data []byte, si *symbolInfo) []byte {
	n := si.blockCount()
	out := make([]byte, len(data), si.dataCapacity+si.ecCodewords)
	copy(out, data)
	ec := make([][]byte, n)
	for b := 0; b < n; b++ {
		var block []byte
		for i := b; i < len(data); i += n {
			block = append(block, data[i])
		}
		ec[b] = rsEncoder.ECCodewords(block, si.blockEC)
	}
	for i := 0; i < si.blockEC; i++ {
		for b := 0; b < n; b++ {
			out = append(out, ec[b][i])
		}
	}
	return out
}

// symbolMatrix draws the finder and clock patterns of every region and
// copies the placed data modules into them.
func symbolMatrix(p *placement, si *symbolInfo) *bitutil.BitMatrix {
	m := bitutil.NewBitMatrix(si.width, si.height)
	rw, rh := si.regionCols+2, si.regionRows+2
	for ry := 0; ry < si.regionsV(); ry++ {
		for rx := 0; rx < si.regionsH(); rx++ {
			x0, y0 := rx*rw, ry*rh
			for y := 0; y < rh; y++ {
				m.Set(x0, y0+y)
				if y%2 == 1 {
					m.Set(x0+rw-1, y0+y)
				}
			}
			for x := 0; x < rw; x++ {
				m.Set(x0+x, y0+rh-1)
				if x%2 == 0 {
					m.Set(x0+x, y0)
				}
			}
			for r := 0; r < si.regionRows; r++ {
				for c := 0; c < si.regionCols; c++ {
					if p.dark(ry*si.regionRows+r, rx*si.regionCols+c) {
						m.Set(x0+c+1, y0+r+1)
					}
				}
			}
		}
	}
	return m
}

// encode builds a symbol. size is 0 for automatic selection or a 1-based
// index into symbols.
func encode(data []byte, eci *charset.ECI, size int, square bool) (*bitutil.BitMatrix, *symbolInfo, error) {
	cw := codewords(data, eci)
	var si *symbolInfo
	if size > 0 {
		si = &symbols[size-1]
		if len(cw) > si.dataCapacity {
			return nil, nil, barnode.Length("data needs %d codewords, Data Matrix %dx%d holds %d",
				len(cw), si.height, si.width, si.dataCapacity)
		}
	} else if si = lookup(len(cw), square); si == nil {
		return nil, nil, barnode.Length("data needs %d codewords, more than any Data Matrix size holds", len(cw))
	}
	full := withEC(pad(cw, si.dataCapacity), si)
	p := newPlacement(full, si.mappingRows(), si.mappingCols())
	p.place()
	return symbolMatrix(p, si), si, nil
}
