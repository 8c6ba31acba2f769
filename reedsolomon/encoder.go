package reedsolomon

import "sync"

// Encoder produces error-correction codewords for a field. Generator
// polynomials are cached per degree and shared across goroutines.
type Encoder struct {
	field *Field

	mu         sync.Mutex
	generators map[int][]int
}

// NewEncoder returns an encoder over field.
func NewEncoder(field *Field) *Encoder {
	return &Encoder{field: field, generators: make(map[int][]int)}
}

// generator returns the coefficients of
// (x - a^base)(x - a^(base+1))...(x - a^(base+degree-1)), highest degree
// first and without the leading 1.
func (e *Encoder) generator(degree int) []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if g, ok := e.generators[degree]; ok {
		return g
	}
	f := e.field
	g := []int{1}
	for i := 0; i < degree; i++ {
		root := f.Exp(i + f.generatorBase)
		next := make([]int, len(g)+1)
		for j, c := range g {
			next[j] ^= c
			next[j+1] ^= f.Mul(c, root)
		}
		g = next
	}
	e.generators[degree] = g[1:]
	return g[1:]
}

// ECCodewords returns the ecCount error-correction codewords for data: the
// remainder of data(x)·x^ecCount divided by the generator polynomial.
func (e *Encoder) ECCodewords(data []byte, ecCount int) []byte {
	words := make([]int, len(data))
	for i, d := range data {
		words[i] = int(d)
	}
	out := make([]byte, ecCount)
	for i, w := range e.ECWords(words, ecCount) {
		out[i] = byte(w)
	}
	return out
}

// ECWords is ECCodewords for fields wider than a byte. Every word must be
// an element of the encoder's field.
func (e *Encoder) ECWords(data []int, ecCount int) []int {
	if ecCount <= 0 {
		panic("reedsolomon: no error correction codewords requested")
	}
	gen := e.generator(ecCount)
	rem := make([]int, ecCount)
	for _, d := range data {
		factor := d ^ rem[0]
		copy(rem, rem[1:])
		rem[ecCount-1] = 0
		if factor == 0 {
			continue
		}
		for i, c := range gen {
			rem[i] ^= e.field.Mul(c, factor)
		}
	}
	return rem
}
