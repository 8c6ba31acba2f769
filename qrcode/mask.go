package qrcode

import "github.com/ericlevine/barnode/bitutil"

// maskBit reports whether the data module at (x, y) is inverted by mask.
func maskBit(mask, x, y int) bool {
	var v int
	switch mask {
	case 0:
		v = (y + x) & 1
	case 1:
		v = y & 1
	case 2:
		v = x % 3
	case 3:
		v = (y + x) % 3
	case 4:
		v = (y/2 + x/3) & 1
	case 5:
		t := y * x
		v = t&1 + t%3
	case 6:
		t := y * x
		v = (t&1 + t%3) & 1
	case 7:
		t := y * x
		v = (t%3 + (y+x)&1) & 1
	default:
		panic("qrcode: invalid mask pattern")
	}
	return v == 0
}

// bestMask returns the mask pattern with the lowest penalty, preferring the
// lower pattern number on ties.
func bestMask(stream *bitutil.BitArray, v *version, level Level) int {
	best, bestPenalty := 0, -1
	for mask := 0; mask < 8; mask++ {
		p := penalty(buildGrid(stream, v, level, mask))
		if bestPenalty < 0 || p < bestPenalty {
			best, bestPenalty = mask, p
		}
	}
	return best
}

func penalty(g *grid) int {
	return penaltyRuns(g) + penaltyBlocks(g) + penaltyFinderLike(g) + penaltyBalance(g)
}

// at reads a cell along a row (horizontal) or column.
func (g *grid) at(i, j int, horizontal bool) int8 {
	if horizontal {
		return g.get(j, i)
	}
	return g.get(i, j)
}

// penaltyRuns scores runs of five or more same-coloured modules.
func penaltyRuns(g *grid) int {
	total := 0
	for _, horizontal := range []bool{true, false} {
		for i := 0; i < g.size; i++ {
			run := 0
			var prev int8 = empty
			for j := 0; j < g.size; j++ {
				c := g.at(i, j, horizontal)
				if c == prev {
					run++
				} else {
					if run >= 5 {
						total += 3 + run - 5
					}
					run, prev = 1, c
				}
			}
			if run >= 5 {
				total += 3 + run - 5
			}
		}
	}
	return total
}

// penaltyBlocks scores every 2x2 block of one colour.
func penaltyBlocks(g *grid) int {
	total := 0
	for y := 0; y < g.size-1; y++ {
		for x := 0; x < g.size-1; x++ {
			c := g.get(x, y)
			if c == g.get(x+1, y) && c == g.get(x, y+1) && c == g.get(x+1, y+1) {
				total += 3
			}
		}
	}
	return total
}

var finderLike = [7]int8{dark, light, dark, dark, dark, light, dark}

// penaltyFinderLike scores 1:1:3:1:1 patterns with four light modules on
// either side. Modules beyond the edge count as light.
func penaltyFinderLike(g *grid) int {
	lightSpan := func(i, from, to int, horizontal bool) bool {
		from, to = max(from, 0), min(to, g.size)
		for j := from; j < to; j++ {
			if g.at(i, j, horizontal) == dark {
				return false
			}
		}
		return true
	}
	n := 0
	for _, horizontal := range []bool{true, false} {
		for i := 0; i < g.size; i++ {
			for j := 0; j+6 < g.size; j++ {
				match := true
				for k, want := range finderLike {
					if g.at(i, j+k, horizontal) != want {
						match = false
						break
					}
				}
				if match && (lightSpan(i, j-4, j, horizontal) || lightSpan(i, j+7, j+11, horizontal)) {
					n++
				}
			}
		}
	}
	return n * 40
}

// penaltyBalance scores the deviation of the dark module ratio from 50%
// in steps of 5%.
func penaltyBalance(g *grid) int {
	darkCount := 0
	for _, c := range g.cells {
		if c == dark {
			darkCount++
		}
	}
	total := len(g.cells)
	diff := darkCount*2 - total
	if diff < 0 {
		diff = -diff
	}
	return diff * 10 / total * 10
}
