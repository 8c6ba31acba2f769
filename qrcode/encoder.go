// Package qrcode encodes QR Code model 2 symbols.
package qrcode

import (
	"strings"

	"github.com/ericlevine/barnode"
	"github.com/ericlevine/barnode/bitutil"
	"github.com/ericlevine/barnode/charset"
	"github.com/ericlevine/barnode/reedsolomon"
)

const alphanumericTable = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var rsEncoder = reedsolomon.NewEncoder(reedsolomon.QRCodeField256)

type mode int

const (
	modeNumeric mode = iota
	modeAlphanumeric
	modeByte
)

func (m mode) indicator() uint32 {
	return [...]uint32{0x1, 0x2, 0x4}[m]
}

// countBits returns the width of the character count field.
func (m mode) countBits(version int) int {
	i := 0
	switch {
	case version >= 27:
		i = 2
	case version >= 10:
		i = 1
	}
	return [...][3]int{{10, 12, 14}, {9, 11, 13}, {8, 16, 16}}[m][i]
}

func chooseMode(data []byte, hasECI bool) mode {
	if hasECI {
		return modeByte
	}
	numeric, alnum := true, true
	for _, c := range data {
		if c < '0' || c > '9' {
			numeric = false
		}
		if strings.IndexByte(alphanumericTable, c) < 0 {
			alnum = false
		}
	}
	switch {
	case numeric:
		return modeNumeric
	case alnum:
		return modeAlphanumeric
	default:
		return modeByte
	}
}

func appendPayload(bits *bitutil.BitArray, m mode, data []byte) {
	switch m {
	case modeNumeric:
		for i := 0; i < len(data); i += 3 {
			n := min(3, len(data)-i)
			v := uint32(0)
			for _, c := range data[i : i+n] {
				v = v*10 + uint32(c-'0')
			}
			bits.AppendBits(v, [...]int{0, 4, 7, 10}[n])
		}
	case modeAlphanumeric:
		for i := 0; i < len(data); i += 2 {
			a := uint32(strings.IndexByte(alphanumericTable, data[i]))
			if i+1 < len(data) {
				b := uint32(strings.IndexByte(alphanumericTable, data[i+1]))
				bits.AppendBits(a*45+b, 11)
			} else {
				bits.AppendBits(a, 6)
			}
		}
	default:
		for _, c := range data {
			bits.AppendBits(uint32(c), 8)
		}
	}
}

func appendECI(bits *bitutil.BitArray, value int) {
	bits.AppendBits(0x7, 4)
	switch {
	case value < 1<<7:
		bits.AppendBits(uint32(value), 8)
	case value < 1<<14:
		bits.AppendBits(0x8000|uint32(value), 16)
	default:
		bits.AppendBits(0xC00000|uint32(value), 24)
	}
}

// code is an encoded QR Code symbol.
type code struct {
	version *version
	level   Level
	mask    int
	modules *bitutil.BitMatrix
}

// encode builds a symbol for data. forcedVersion and forcedMask are 0 and
// -1 respectively when the encoder should choose.
func encode(data []byte, eci *charset.ECI, level Level, forcedVersion, forcedMask int) (*code, error) {
	v, codewords, err := dataCodewords(data, eci, level, forcedVersion)
	if err != nil {
		return nil, err
	}
	stream := bitutil.NewBitArray()
	for _, cw := range interleave(codewords, v.blocks[level]) {
		stream.AppendBits(uint32(cw), 8)
	}
	mask := forcedMask
	if mask < 0 {
		mask = bestMask(stream, v, level)
	}
	g := buildGrid(stream, v, level, mask)
	return &code{version: v, level: level, mask: mask, modules: g.bitMatrix()}, nil
}

// dataCodewords selects the smallest version that holds data, or checks
// the forced one, and returns the padded data codewords.
func dataCodewords(data []byte, eci *charset.ECI, level Level, forcedVersion int) (*version, []byte, error) {
	m := chooseMode(data, eci != nil)
	header := bitutil.NewBitArray()
	if eci != nil {
		appendECI(header, eci.Value)
	}
	header.AppendBits(m.indicator(), 4)
	payload := bitutil.NewBitArray()
	appendPayload(payload, m, data)

	var v *version
	first, last := 1, len(versions)
	if forcedVersion > 0 {
		first, last = forcedVersion, forcedVersion
	}
	for n := first; n <= last; n++ {
		need := header.Size() + m.countBits(n) + payload.Size()
		if need <= versions[n-1].blocks[level].dataCodewords()*8 {
			v = &versions[n-1]
			break
		}
	}
	if v == nil {
		if forcedVersion > 0 {
			return nil, nil, barnode.Length("data does not fit QR Code version %d-%s", forcedVersion, level)
		}
		return nil, nil, barnode.Length("data too long for QR Code at level %s", level)
	}

	bits := bitutil.NewBitArray()
	bits.AppendBitArray(header)
	bits.AppendBits(uint32(len(data)), m.countBits(v.number))
	bits.AppendBitArray(payload)
	terminate(bits, v.blocks[level].dataCodewords())
	return v, bits.Bytes(), nil
}

// terminate appends the terminator, pads to a byte boundary and fills the
// remaining capacity with the alternating pad codewords.
func terminate(bits *bitutil.BitArray, dataCodewords int) {
	capacity := dataCodewords * 8
	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}
	for bits.Size()%8 != 0 {
		bits.AppendBit(false)
	}
	for pad := uint32(0xEC); bits.Size() < capacity; pad ^= 0xEC ^ 0x11 {
		bits.AppendBits(pad, 8)
	}
}

// interleave splits data into the error correction blocks described by blocks, adds
// the EC codewords of each block and interleaves the result column-wise.
func interleave(data []byte, blocks blockSpec) []byte {
	n := blocks.numBlocks()
	dataBlocks := make([][]byte, n)
	ecBlocks := make([][]byte, n)
	off := 0
	for i := 0; i < n; i++ {
		size := blocks.data1
		if i >= blocks.count1 {
			size = blocks.data2
		}
		dataBlocks[i] = data[off : off+size]
		ecBlocks[i] = rsEncoder.ECCodewords(dataBlocks[i], blocks.ec)
		off += size
	}
	out := make([]byte, 0, blocks.totalCodewords())
	for i := 0; i < max(blocks.data1, blocks.data2); i++ {
		for _, blk := range dataBlocks {
			if i < len(blk) {
				out = append(out, blk[i])
			}
		}
	}
	for i := 0; i < blocks.ec; i++ {
		for _, blk := range ecBlocks {
			out = append(out, blk[i])
		}
	}
	return out
}
