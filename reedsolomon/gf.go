// Package reedsolomon computes Reed-Solomon error-correction codewords over
// the Galois fields used by QR Code, Data Matrix and Aztec.
package reedsolomon

// Field is a Galois field GF(size) defined by a primitive polynomial.
type Field struct {
	exp           []int
	log           []int
	size          int
	primitive     int
	generatorBase int
}

// Predefined fields.
var (
	// QRCodeField256 is x^8 + x^4 + x^3 + x^2 + 1 with generator base 0.
	QRCodeField256 = NewField(0x011D, 256, 0)
	// DataMatrixField256 is x^8 + x^5 + x^3 + x^2 + 1 with generator base 1.
	DataMatrixField256 = NewField(0x012D, 256, 1)

	// Aztec fields, one per codeword width. 8-bit Aztec words share
	// DataMatrixField256.
	AztecParam  = NewField(0x13, 16, 1)
	AztecData6  = NewField(0x43, 64, 1)
	AztecData10 = NewField(0x409, 1024, 1)
	AztecData12 = NewField(0x1069, 4096, 1)
)

// NewField builds the exponent and logarithm tables for the field.
func NewField(primitive, size, generatorBase int) *Field {
	f := &Field{
		exp:           make([]int, size),
		log:           make([]int, size),
		size:          size,
		primitive:     primitive,
		generatorBase: generatorBase,
	}
	x := 1
	for i := 0; i < size; i++ {
		f.exp[i] = x
		x <<= 1
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		f.log[f.exp[i]] = i
	}
	return f
}

// Size returns the number of elements in the field.
func (f *Field) Size() int { return f.size }

// Exp returns alpha^a.
func (f *Field) Exp(a int) int { return f.exp[a%(f.size-1)] }

// Mul multiplies two field elements.
func (f *Field) Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(f.log[a]+f.log[b])%(f.size-1)]
}
