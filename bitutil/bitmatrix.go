package bitutil

import "strings"

// BitMatrix is a grid of modules addressed as (x, y), with x the column and
// y the row. A set bit is a dark module.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	bits    []uint32
}

// NewBitMatrix returns a width x height matrix with every module light.
func NewBitMatrix(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitutil: matrix dimensions must be positive")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		bits:    make([]uint32, rowSize*height),
	}
}

// Width returns the number of columns.
func (m *BitMatrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *BitMatrix) Height() int { return m.height }

// Get reports whether the module at (x, y) is dark.
func (m *BitMatrix) Get(x, y int) bool {
	return m.bits[y*m.rowSize+x/32]&(1<<uint(x&31)) != 0
}

// Set darkens the module at (x, y).
func (m *BitMatrix) Set(x, y int) {
	m.bits[y*m.rowSize+x/32] |= 1 << uint(x&31)
}

// Unset lightens the module at (x, y).
func (m *BitMatrix) Unset(x, y int) {
	m.bits[y*m.rowSize+x/32] &^= 1 << uint(x&31)
}

// SetTo sets the module at (x, y) to dark or light.
func (m *BitMatrix) SetTo(x, y int, dark bool) {
	if dark {
		m.Set(x, y)
	} else {
		m.Unset(x, y)
	}
}

// Flip inverts the module at (x, y).
func (m *BitMatrix) Flip(x, y int) {
	m.bits[y*m.rowSize+x/32] ^= 1 << uint(x&31)
}

// SetRegion darkens the width x height rectangle whose top-left corner is
// (left, top).
func (m *BitMatrix) SetRegion(left, top, width, height int) {
	right, bottom := left+width, top+height
	if left < 0 || top < 0 || width < 1 || height < 1 || right > m.width || bottom > m.height {
		panic("bitutil: region outside matrix")
	}
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			m.Set(x, y)
		}
	}
}

// Runs calls fn for every maximal horizontal run of dark modules in row y.
func (m *BitMatrix) Runs(y int, fn func(x, n int)) {
	start := -1
	for x := 0; x < m.width; x++ {
		dark := m.Get(x, y)
		switch {
		case dark && start < 0:
			start = x
		case !dark && start >= 0:
			fn(start, x-start)
			start = -1
		}
	}
	if start >= 0 {
		fn(start, m.width-start)
	}
}

// Clone returns an independent copy of m.
func (m *BitMatrix) Clone() *BitMatrix {
	bits := make([]uint32, len(m.bits))
	copy(bits, m.bits)
	return &BitMatrix{width: m.width, height: m.height, rowSize: m.rowSize, bits: bits}
}

// String renders the matrix with "X " for dark and "  " for light modules,
// one line per row.
func (m *BitMatrix) String() string {
	var sb strings.Builder
	sb.Grow(m.height * (m.width*2 + 1))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.Get(x, y) {
				sb.WriteString("X ")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FromBools builds a single-row matrix from a module sequence, as produced
// by the linear encoders.
func FromBools(modules []bool) *BitMatrix {
	m := NewBitMatrix(len(modules), 1)
	for x, dark := range modules {
		if dark {
			m.Set(x, 0)
		}
	}
	return m
}
