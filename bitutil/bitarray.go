// Package bitutil provides the bit containers shared by the symbology
// encoders: a growable bit buffer for codeword streams and a 2-D module grid.
package bitutil

import "strings"

// BitArray is an append-only buffer of bits, most significant bit first
// within each appended value.
type BitArray struct {
	words []uint32
	size  int
}

// NewBitArray returns an empty BitArray.
func NewBitArray() *BitArray {
	return &BitArray{}
}

// Size returns the number of bits appended so far.
func (a *BitArray) Size() int {
	return a.size
}

// SizeInBytes returns the number of bytes needed to hold the bits.
func (a *BitArray) SizeInBytes() int {
	return (a.size + 7) / 8
}

// Get reports whether bit i is set.
func (a *BitArray) Get(i int) bool {
	return a.words[i>>5]&(1<<uint(i&31)) != 0
}

func (a *BitArray) grow(n int) {
	need := (a.size + n + 31) >> 5
	if need > len(a.words) {
		words := make([]uint32, need, need*2)
		copy(words, a.words)
		a.words = words
	}
}

// AppendBit appends a single bit.
func (a *BitArray) AppendBit(bit bool) {
	a.grow(1)
	if bit {
		a.words[a.size>>5] |= 1 << uint(a.size&31)
	}
	a.size++
}

// AppendBits appends the numBits least significant bits of value, most
// significant first. numBits must be between 0 and 32.
func (a *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitutil: numBits must be between 0 and 32")
	}
	a.grow(numBits)
	for i := numBits - 1; i >= 0; i-- {
		a.AppendBit(value&(1<<uint(i)) != 0)
	}
}

// AppendBitArray appends every bit of other.
func (a *BitArray) AppendBitArray(other *BitArray) {
	a.grow(other.size)
	for i := 0; i < other.size; i++ {
		a.AppendBit(other.Get(i))
	}
}

// Bytes packs the bits into bytes, padding the final byte with zero bits.
func (a *BitArray) Bytes() []byte {
	out := make([]byte, a.SizeInBytes())
	for i := 0; i < a.size; i++ {
		if a.Get(i) {
			out[i>>3] |= 0x80 >> uint(i&7)
		}
	}
	return out
}

// String renders the bits as 'X' and '.' in groups of eight.
func (a *BitArray) String() string {
	var sb strings.Builder
	for i := 0; i < a.size; i++ {
		if i > 0 && i&7 == 0 {
			sb.WriteByte(' ')
		}
		if a.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
