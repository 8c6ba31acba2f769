// Package oned encodes the linear (1-D) symbologies: Code 128, Code 39,
// Code 93, Codabar, Interleaved 2 of 5 and the UPC/EAN family.
package oned

import (
	"github.com/ericlevine/barnode"
	"github.com/ericlevine/barnode/bitutil"
)

const (
	quietZone = 10 // modules on each side
	barHeight = 50 // default bar height in modules
)

// bars accumulates a module sequence, dark modules as true.
type bars []bool

// widths appends alternating bars and spaces of the given widths, starting
// with a bar when bar is true.
func (b *bars) widths(ws []int, bar bool) {
	for _, w := range ws {
		for j := 0; j < w; j++ {
			*b = append(*b, bar)
		}
		bar = !bar
	}
}

// bits appends the n low bits of v as modules, most significant first.
func (b *bars) bits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		*b = append(*b, v&(1<<uint(i)) != 0)
	}
}

func (b bars) symbol(text string) *barnode.Symbol {
	return &barnode.Symbol{Modules: bitutil.FromBools(b), Text: text}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// mod10 returns the UPC/EAN style check digit of digits: weights 3 and 1
// alternate from the rightmost digit.
func mod10(digits string) int {
	sum := 0
	weight := 3
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		weight = 4 - weight
	}
	return (10 - sum%10) % 10
}

// checkOption2 validates the optional check character switch shared by the
// symbologies where option2=1 appends a check character.
func checkOption2(name string, opts barnode.Options) (bool, error) {
	if err := opts.RequireUnset(name, 1, 3); err != nil {
		return false, err
	}
	switch opts.Option2 {
	case barnode.Unset:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, barnode.InvalidOption("%s option2 must be 1 (add check character), got %d", name, opts.Option2)
	}
}
