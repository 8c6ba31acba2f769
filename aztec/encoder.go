// Package aztec encodes Aztec Code symbols, both compact (1-4 layers) and
// full-range (1-32 layers).
package aztec

import (
	"github.com/ericlevine/barnode"
	"github.com/ericlevine/barnode/bitutil"
	"github.com/ericlevine/barnode/charset"
	"github.com/ericlevine/barnode/reedsolomon"
)

const (
	defaultECPercent = 33
	// Check bits added on top of the requested percentage.
	extraECBits = 11

	maxCompactLayers = 4
	maxLayers        = 32
)

// wordSizes[layers] is the codeword width of a symbol with that many layers.
var wordSizes = [maxLayers + 1]int{
	4, 6, 6, 8, 8, 8, 8, 8, 8, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

var rsEncoders = map[int]*reedsolomon.Encoder{
	4:  reedsolomon.NewEncoder(reedsolomon.AztecParam),
	6:  reedsolomon.NewEncoder(reedsolomon.AztecData6),
	8:  reedsolomon.NewEncoder(reedsolomon.DataMatrixField256),
	10: reedsolomon.NewEncoder(reedsolomon.AztecData10),
	12: reedsolomon.NewEncoder(reedsolomon.AztecData12),
}

// shape is a symbol size: a layer count, compact or full-range.
type shape struct {
	compact bool
	layers  int
}

// capacity is the number of data and check bits the layers hold.
func (s shape) capacity() int {
	if s.compact {
		return (88 + 16*s.layers) * s.layers
	}
	return (112 + 16*s.layers) * s.layers
}

func (s shape) wordSize() int { return wordSizes[s.layers] }

// baseSize is the side length without full-range reference grid lines.
func (s shape) baseSize() int {
	if s.compact {
		return 11 + 4*s.layers
	}
	return 14 + 4*s.layers
}

func (s shape) size() int {
	base := s.baseSize()
	if s.compact {
		return base
	}
	return base + 1 + 2*((base/2-1)/15)
}

// autoShapes lists the sizes tried in order. Full-range 1-3 are skipped:
// compact 2-4 have the same side length and hold more.
var autoShapes = func() []shape {
	var out []shape
	for l := 1; l <= maxCompactLayers; l++ {
		out = append(out, shape{compact: true, layers: l})
	}
	for l := 4; l <= maxLayers; l++ {
		out = append(out, shape{layers: l})
	}
	return out
}()

// symbol is an encoded Aztec code.
type symbol struct {
	shape
	words   int
	modules *bitutil.BitMatrix
}

// encode builds the symbol for data. ecPercent is the minimum share of
// check words; forced is the requested shape, or the zero shape to choose
// the smallest that fits.
func encode(data []byte, eci *charset.ECI, ecPercent int, forced shape) (*symbol, error) {
	value := 0
	if eci != nil {
		value = eci.Value
	}
	bits := encodeText(data, value)
	s, stuffed, err := fit(bits, ecPercent, forced)
	if err != nil {
		return nil, err
	}
	ws := s.wordSize()
	words := stuffed.Size() / ws

	n := s.size()
	m := bitutil.NewBitMatrix(n, n)
	drawData(m, s, checkWords(stuffed, s.capacity(), ws))
	drawModeMessage(m, s, modeMessage(s, words))
	if s.compact {
		drawBullsEye(m, n/2, 5)
	} else {
		drawBullsEye(m, n/2, 7)
		drawReferenceGrid(m, s)
	}
	return &symbol{shape: s, words: words, modules: m}, nil
}

// fit chooses the symbol shape for bits and returns it with the stuffed
// data bits.
func fit(bits *bitutil.BitArray, ecPercent int, forced shape) (shape, *bitutil.BitArray, error) {
	ecBits := bits.Size()*ecPercent/100 + extraECBits
	try := func(s shape) *bitutil.BitArray {
		ws := s.wordSize()
		stuffed := stuff(bits, ws)
		// The compact mode message counts words in 6 bits.
		if s.compact && stuffed.Size() > ws*64 {
			return nil
		}
		usable := s.capacity() - s.capacity()%ws
		if stuffed.Size()+ecBits > usable {
			return nil
		}
		return stuffed
	}
	if forced.layers != 0 {
		if stuffed := try(forced); stuffed != nil {
			return forced, stuffed, nil
		}
		kind := "full-range"
		if forced.compact {
			kind = "compact"
		}
		return shape{}, nil, barnode.Length("Aztec data does not fit %s %d layers", kind, forced.layers)
	}
	for _, s := range autoShapes {
		if bits.Size()+ecBits > s.capacity() {
			continue
		}
		if stuffed := try(s); stuffed != nil {
			return s, stuffed, nil
		}
	}
	return shape{}, nil, barnode.Length("Aztec data needs %d bits, more than the largest symbol holds", bits.Size()+ecBits)
}

// stuff splits bits into words of ws bits. A word whose upper ws-1 bits are
// all equal gets a complementary last bit, and the bit it displaces starts
// the next word. The final word is padded with ones.
func stuff(bits *bitutil.BitArray, ws int) *bitutil.BitArray {
	out := bitutil.NewBitArray()
	upperMask := (1 << ws) - 2
	for i := 0; i < bits.Size(); {
		word := 0
		for j := 0; j < ws; j++ {
			if i+j >= bits.Size() || bits.Get(i+j) {
				word |= 1 << (ws - 1 - j)
			}
		}
		switch word & upperMask {
		case upperMask:
			out.AppendBits(uint32(word&upperMask), ws)
			i += ws - 1
		case 0:
			out.AppendBits(uint32(word|1), ws)
			i += ws - 1
		default:
			out.AppendBits(uint32(word), ws)
			i += ws
		}
	}
	return out
}

// checkWords appends Reed-Solomon check words to the whole words of bits and
// left-pads the result with zeros to total bits.
func checkWords(bits *bitutil.BitArray, total, ws int) *bitutil.BitArray {
	data := make([]int, bits.Size()/ws)
	for i := range data {
		for j := 0; j < ws; j++ {
			if bits.Get(i*ws + j) {
				data[i] |= 1 << (ws - 1 - j)
			}
		}
	}
	ec := rsEncoders[ws].ECWords(data, total/ws-len(data))
	out := bitutil.NewBitArray()
	out.AppendBits(0, total%ws)
	for _, w := range append(data, ec...) {
		out.AppendBits(uint32(w), ws)
	}
	return out
}

// modeMessage encodes the layer and data word counts with their own check
// words: 28 bits for compact symbols, 40 for full-range.
func modeMessage(s shape, words int) *bitutil.BitArray {
	m := bitutil.NewBitArray()
	if s.compact {
		m.AppendBits(uint32(s.layers-1), 2)
		m.AppendBits(uint32(words-1), 6)
		return checkWords(m, 28, 4)
	}
	m.AppendBits(uint32(s.layers-1), 5)
	m.AppendBits(uint32(words-1), 11)
	return checkWords(m, 40, 4)
}

// alignment maps a coordinate of the symbol without reference grid lines to
// the real one. Compact symbols have no grid and map to themselves.
func alignment(s shape) []int {
	base := s.baseSize()
	at := make([]int, base)
	if s.compact {
		for i := range at {
			at[i] = i
		}
		return at
	}
	half, center := base/2, s.size()/2
	for i := 0; i < half; i++ {
		skip := i + i/15
		at[half-i-1] = center - skip - 1
		at[half+i] = center + skip + 1
	}
	return at
}

// drawData lays the message out in two-module-thick layers, outermost
// first, each layer running clockwise from the top left.
func drawData(m *bitutil.BitMatrix, s shape, bits *bitutil.BitArray) {
	at := alignment(s)
	last := s.baseSize() - 1
	off := 0
	for i := 0; i < s.layers; i++ {
		side := (s.layers-i)*4 + 9
		if !s.compact {
			side += 3
		}
		for j := 0; j < side; j++ {
			for k := 0; k < 2; k++ {
				col := off + j*2 + k
				if bits.Get(col) {
					m.Set(at[i*2+k], at[i*2+j])
				}
				if bits.Get(col + side*2) {
					m.Set(at[i*2+j], at[last-i*2-k])
				}
				if bits.Get(col + side*4) {
					m.Set(at[last-i*2-k], at[last-i*2-j])
				}
				if bits.Get(col + side*6) {
					m.Set(at[last-i*2-j], at[i*2+k])
				}
			}
		}
		off += side * 8
	}
}

// drawModeMessage places the mode message on the ring just outside the
// bull's eye, skipping the reference grid line on full-range symbols.
func drawModeMessage(m *bitutil.BitMatrix, s shape, msg *bitutil.BitArray) {
	c := s.size() / 2
	if s.compact {
		for i := 0; i < 7; i++ {
			p := c - 3 + i
			m.SetTo(p, c-5, msg.Get(i))
			m.SetTo(c+5, p, msg.Get(i+7))
			m.SetTo(p, c+5, msg.Get(20-i))
			m.SetTo(c-5, p, msg.Get(27-i))
		}
		return
	}
	for i := 0; i < 10; i++ {
		p := c - 5 + i + i/5
		m.SetTo(p, c-7, msg.Get(i))
		m.SetTo(c+7, p, msg.Get(i+10))
		m.SetTo(p, c+7, msg.Get(29-i))
		m.SetTo(c-7, p, msg.Get(39-i))
	}
}

// drawBullsEye draws the concentric finder squares of radius up to size-1
// and the orientation marks at its corners.
func drawBullsEye(m *bitutil.BitMatrix, c, size int) {
	for r := 0; r < size; r += 2 {
		for j := c - r; j <= c+r; j++ {
			m.Set(j, c-r)
			m.Set(j, c+r)
			m.Set(c-r, j)
			m.Set(c+r, j)
		}
	}
	m.Set(c-size, c-size)
	m.Set(c-size+1, c-size)
	m.Set(c-size, c-size+1)
	m.Set(c+size, c-size)
	m.Set(c+size, c-size+1)
	m.Set(c+size, c+size-1)
}

// drawReferenceGrid draws the alternating grid lines every 16 modules from
// the centre of a full-range symbol.
func drawReferenceGrid(m *bitutil.BitMatrix, s shape) {
	n := s.size()
	c := n / 2
	for i, j := 0, 0; i < s.baseSize()/2-1; i, j = i+15, j+16 {
		for k := c & 1; k < n; k += 2 {
			m.Set(c-j, k)
			m.Set(c+j, k)
			m.Set(k, c-j)
			m.Set(k, c+j)
		}
	}
}
