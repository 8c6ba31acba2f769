package aztec

import (
	"strconv"

	"github.com/ericlevine/barnode/bitutil"
)

// mode is one of the five Aztec character sets. Digit codes are 4 bits
// wide, all others 5.
type mode int

const (
	upper mode = iota
	lower
	mixed
	digit
	punct
)

func (m mode) width() int {
	if m == digit {
		return 4
	}
	return 5
}

const (
	// Code 0 is P/S in upper, lower, mixed and digit, and FLG(n) in punct.
	codePS  = 0
	codeFLG = 0
	codeBS  = 31

	// Binary shift lengths: 5 bits up to 31, else 5 zero bits and 11 bits
	// holding length-31.
	maxBinaryRun = 31 + 2047
)

// codes[m][b] is the code of byte b in mode m, or 0 when m cannot hold b.
var codes [5][256]int

func init() {
	tables := [...]struct {
		m     mode
		chars string
	}{
		{upper, " ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{lower, " abcdefghijklmnopqrstuvwxyz"},
		{mixed, " \x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c\x0d\x1b\x1c\x1d\x1e\x1f@\\^_`|~\x7f"},
		{digit, " 0123456789,."},
	}
	for _, t := range tables {
		for i := 0; i < len(t.chars); i++ {
			codes[t.m][t.chars[i]] = i + 1
		}
	}
	codes[punct]['\r'] = 1
	const single = "!\"#$%&'()*+,-./:;<=>?[]{}"
	for i := 0; i < len(single); i++ {
		codes[punct][single[i]] = i + 6
	}
}

// pairCode returns the punct code of the two-byte sequence a b, or 0.
func pairCode(a, b byte) int {
	switch {
	case a == '\r' && b == '\n':
		return 2
	case a == '.' && b == ' ':
		return 3
	case a == ',' && b == ' ':
		return 4
	case a == ':' && b == ' ':
		return 5
	}
	return 0
}

type step struct{ code, width int }

// latches[from][to] is the code sequence that latches from one mode to
// another. Lower has no direct latch to upper and goes through digit.
var latches = [5][5][]step{
	upper: {lower: {{28, 5}}, mixed: {{29, 5}}, digit: {{30, 5}}, punct: {{29, 5}, {30, 5}}},
	lower: {upper: {{30, 5}, {14, 4}}, mixed: {{29, 5}}, digit: {{30, 5}}, punct: {{29, 5}, {30, 5}}},
	mixed: {upper: {{29, 5}}, lower: {{28, 5}}, digit: {{29, 5}, {30, 5}}, punct: {{30, 5}}},
	digit: {upper: {{14, 4}}, lower: {{14, 4}, {28, 5}}, mixed: {{14, 4}, {29, 5}}, punct: {{14, 4}, {29, 5}, {30, 5}}},
	punct: {upper: {{31, 5}}, lower: {{31, 5}, {28, 5}}, mixed: {{31, 5}, {29, 5}}, digit: {{31, 5}, {30, 5}}},
}

// upperShift is the U/S code of the modes that have one.
var upperShift = map[mode]int{lower: 28, digit: 15}

func latchCost(from, to mode) int {
	n := 0
	for _, s := range latches[from][to] {
		n += s.width
	}
	return n
}

func encodable(b byte) bool {
	for m := upper; m <= punct; m++ {
		if codes[m][b] != 0 {
			return true
		}
	}
	return false
}

// highLevel is a greedy text compactor: it stays in the latched mode while
// it can, prefers shifts for single excursions and falls back to binary
// shift for bytes no character mode holds.
type highLevel struct {
	bits *bitutil.BitArray
	mode mode
	data []byte
}

func (h *highLevel) emit(code int, m mode) {
	h.bits.AppendBits(uint32(code), m.width())
}

func (h *highLevel) latch(to mode) {
	for _, s := range latches[h.mode][to] {
		h.bits.AppendBits(uint32(s.code), s.width)
	}
	h.mode = to
}

// holds reports whether the byte at i exists and fits the current mode.
func (h *highLevel) holds(i int) bool {
	return i < len(h.data) && codes[h.mode][h.data[i]] != 0
}

// encodeText compacts data into the Aztec bit stream, starting with an
// ECI designator when eci is positive.
func encodeText(data []byte, eci int) *bitutil.BitArray {
	h := &highLevel{bits: bitutil.NewBitArray(), mode: upper, data: data}
	if eci > 0 {
		h.eci(eci)
	}
	for i := 0; i < len(data); {
		i = h.next(i)
	}
	return h.bits
}

// eci writes P/S FLG(n) followed by the n decimal digits of value.
func (h *highLevel) eci(value int) {
	digits := strconv.Itoa(value)
	h.emit(codePS, h.mode)
	h.emit(codeFLG, punct)
	h.bits.AppendBits(uint32(len(digits)), 3)
	for i := 0; i < len(digits); i++ {
		h.bits.AppendBits(uint32(digits[i]-'0'+2), 4)
	}
}

// next encodes the character (or punct pair) at i and returns the index
// after it.
func (h *highLevel) next(i int) int {
	b := h.data[i]
	if i+1 < len(h.data) {
		if c := pairCode(b, h.data[i+1]); c != 0 && (h.mode == punct || !h.holds(i) || !h.holds(i+1)) {
			h.punctuation(c, i+2)
			return i + 2
		}
	}
	if c := codes[h.mode][b]; c != 0 {
		h.emit(c, h.mode)
		return i + 1
	}
	if c := codes[punct][b]; c != 0 && (i+1 == len(h.data) || h.holds(i+1)) {
		h.punctuation(c, i+1)
		return i + 1
	}
	if m, ok := h.target(b); ok {
		if us, ok := upperShift[h.mode]; ok && m == upper && (i+1 == len(h.data) || h.holds(i+1)) {
			h.emit(us, h.mode)
			h.emit(codes[upper][b], upper)
			return i + 1
		}
		h.latch(m)
		h.emit(codes[m][b], m)
		return i + 1
	}
	if c := codes[punct][b]; c != 0 {
		h.punctuation(c, i+1)
		return i + 1
	}
	return h.binary(i)
}

// target picks the cheapest mode to latch to for b, ignoring punct.
func (h *highLevel) target(b byte) (mode, bool) {
	best, cost := upper, -1
	for m := upper; m <= digit; m++ {
		if m == h.mode || codes[m][b] == 0 {
			continue
		}
		if c := latchCost(h.mode, m); cost < 0 || c < cost {
			best, cost = m, c
		}
	}
	return best, cost >= 0
}

// punctuation writes punct code c. It latches into punct when the byte at
// following is punctuation too and shifts otherwise.
func (h *highLevel) punctuation(c, following int) {
	if h.mode == punct {
		h.emit(c, punct)
		return
	}
	if following < len(h.data) && !h.holds(following) && codes[punct][h.data[following]] != 0 {
		h.latch(punct)
		h.emit(c, punct)
		return
	}
	h.emit(codePS, h.mode)
	h.emit(c, punct)
}

// binary writes the run of unencodable bytes starting at i under B/S.
func (h *highLevel) binary(i int) int {
	if h.mode == digit || h.mode == punct {
		h.latch(upper)
	}
	end := i
	for end < len(h.data) && end-i < maxBinaryRun && !encodable(h.data[end]) {
		end++
	}
	n := end - i
	h.emit(codeBS, h.mode)
	if n <= 31 {
		h.bits.AppendBits(uint32(n), 5)
	} else {
		h.bits.AppendBits(0, 5)
		h.bits.AppendBits(uint32(n-31), 11)
	}
	for _, b := range h.data[i:end] {
		h.bits.AppendBits(uint32(b), 8)
	}
	return end
}
