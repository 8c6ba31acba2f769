package qrcode

import (
	"math/bits"

	"github.com/ericlevine/barnode/bitutil"
)

const (
	empty int8 = -1
	light int8 = 0
	dark  int8 = 1
)

// grid is a square module matrix under construction; cells start empty.
type grid struct {
	size  int
	cells []int8
}

func newGrid(size int) *grid {
	g := &grid{size: size, cells: make([]int8, size*size)}
	for i := range g.cells {
		g.cells[i] = empty
	}
	return g
}

func (g *grid) get(x, y int) int8 { return g.cells[y*g.size+x] }

func (g *grid) set(x, y int, on bool) {
	if on {
		g.cells[y*g.size+x] = dark
	} else {
		g.cells[y*g.size+x] = light
	}
}

func (g *grid) bitMatrix() *bitutil.BitMatrix {
	m := bitutil.NewBitMatrix(g.size, g.size)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.get(x, y) == dark {
				m.Set(x, y)
			}
		}
	}
	return m
}

// finder draws a position detection pattern with its light separator.
func (g *grid) finder(x0, y0 int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			x, y := x0+dx, y0+dy
			if x < 0 || y < 0 || x >= g.size || y >= g.size {
				continue
			}
			inside := dx >= 0 && dx <= 6 && dy >= 0 && dy <= 6
			ring := dx == 0 || dx == 6 || dy == 0 || dy == 6
			core := dx >= 2 && dx <= 4 && dy >= 2 && dy <= 4
			g.set(x, y, inside && (ring || core))
		}
	}
}

func (g *grid) alignment(cx, cy int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			ring := dx == -2 || dx == 2 || dy == -2 || dy == 2
			g.set(cx+dx, cy+dy, ring || (dx == 0 && dy == 0))
		}
	}
}

func (g *grid) functionPatterns(v *version) {
	n := g.size
	g.finder(0, 0)
	g.finder(n-7, 0)
	g.finder(0, n-7)
	g.set(8, n-8, true)
	for _, cy := range v.align {
		for _, cx := range v.align {
			if g.get(cx, cy) == empty {
				g.alignment(cx, cy)
			}
		}
	}
	for i := 8; i < n-8; i++ {
		if g.get(i, 6) == empty {
			g.set(i, 6, i%2 == 0)
		}
		if g.get(6, i) == empty {
			g.set(6, i, i%2 == 0)
		}
	}
}

// bchCode appends the BCH remainder of value for the generator poly.
func bchCode(value, poly uint32) uint32 {
	n := bits.Len32(poly)
	v := value << (n - 1)
	for bits.Len32(v) >= n {
		v ^= poly << (bits.Len32(v) - n)
	}
	return value<<(n-1) | v
}

var formatCoords = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// formatInfo returns the masked 15-bit format word for level and mask.
func formatInfo(level Level, mask int) uint32 {
	return bchCode(level.formatBits()<<3|uint32(mask), 0x537) ^ 0x5412
}

func (g *grid) format(level Level, mask int) {
	info := formatInfo(level, mask)
	for i, c := range formatCoords {
		bit := info&(1<<uint(i)) != 0
		g.set(c[0], c[1], bit)
		if i < 8 {
			g.set(g.size-1-i, 8, bit)
		} else {
			g.set(8, g.size-7+(i-8), bit)
		}
	}
}

func (g *grid) versionBlocks(v *version) {
	if v.number < 7 {
		return
	}
	info := versionInfo[v.number-7]
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bit := info&(1<<uint(i*3+j)) != 0
			g.set(i, g.size-11+j, bit)
			g.set(g.size-11+j, i, bit)
		}
	}
}

// place fills the empty cells with the codeword stream in the two-column
// zigzag from the bottom right corner, skipping the vertical timing column.
func (g *grid) place(stream *bitutil.BitArray, mask int) {
	idx := 0
	up := true
	for x := g.size - 1; x > 0; x -= 2 {
		if x == 6 {
			x--
		}
		for k := 0; k < g.size; k++ {
			y := k
			if up {
				y = g.size - 1 - k
			}
			for i := 0; i < 2; i++ {
				xx := x - i
				if g.get(xx, y) != empty {
					continue
				}
				bit := false
				if idx < stream.Size() {
					bit = stream.Get(idx)
					idx++
				}
				if maskBit(mask, xx, y) {
					bit = !bit
				}
				g.set(xx, y, bit)
			}
		}
		up = !up
	}
}

func buildGrid(stream *bitutil.BitArray, v *version, level Level, mask int) *grid {
	g := newGrid(v.dimension())
	g.functionPatterns(v)
	g.format(level, mask)
	g.versionBlocks(v)
	g.place(stream, mask)
	return g
}
