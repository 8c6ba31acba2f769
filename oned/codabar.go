package oned

import (
	"strings"

	"github.com/ericlevine/barnode"
)

const codabarAlphabet = "0123456789-$:/.+ABCD"

// codabarWidths are the 7 element widths per character; 2 is wide.
var codabarWidths = [len(codabarAlphabet)][7]int{
	{1, 1, 1, 1, 1, 2, 2}, {1, 1, 1, 1, 2, 2, 1}, {1, 1, 1, 2, 1, 1, 2}, {2, 2, 1, 1, 1, 1, 1},
	{1, 1, 2, 1, 1, 2, 1}, {2, 1, 1, 1, 1, 2, 1}, {1, 2, 1, 1, 1, 1, 2}, {1, 2, 1, 1, 2, 1, 1},
	{1, 2, 2, 1, 1, 1, 1}, {2, 1, 1, 2, 1, 1, 1}, // 0-9
	{1, 1, 1, 2, 2, 1, 1}, {1, 1, 2, 2, 1, 1, 1}, {2, 1, 1, 1, 2, 1, 2}, {2, 1, 2, 1, 1, 1, 2},
	{2, 1, 2, 1, 2, 1, 1}, {1, 1, 2, 1, 2, 1, 2}, // - $ : / . +
	{1, 1, 2, 2, 1, 2, 1}, {1, 2, 1, 2, 1, 1, 2}, {1, 1, 1, 2, 1, 2, 2}, {1, 1, 1, 2, 2, 2, 1}, // A-D
}

// CodabarCharset accepts data characters and the start/stop guards in
// either case, including the alternate guards T, N, * and E.
var CodabarCharset = barnode.CharSet("Codabar (0-9 - $ : / . + and guards A-D)",
	"0123456789-$:/.+ABCDTN*Eabcdtne")

// codabarGuard maps a start/stop character to A-D, or returns 0.
func codabarGuard(c byte) byte {
	switch c {
	case 'A', 'B', 'C', 'D':
		return c
	case 'T':
		return 'A'
	case 'N':
		return 'B'
	case '*':
		return 'C'
	case 'E':
		return 'D'
	}
	return 0
}

func encodeCodabar(text string, opts barnode.Options) (*barnode.Symbol, error) {
	check, err := checkOption2("Codabar", opts)
	if err != nil {
		return nil, err
	}
	data := []byte(strings.ToUpper(text))
	start, stop := codabarGuard(data[0]), codabarGuard(data[len(data)-1])
	switch {
	case len(data) >= 2 && start != 0 && stop != 0:
		data[0], data[len(data)-1] = start, stop
	case start == 0 && stop == 0:
		data = append(append([]byte{'A'}, data...), 'A')
	case start != 0 && len(data) > 1:
		return nil, barnode.InvalidCharacter(rune(text[len(text)-1]), len(text)-1, "Codabar stop character A-D")
	default:
		return nil, barnode.InvalidCharacter(rune(text[0]), 0, "Codabar start character A-D")
	}
	offset := len(data) - len(text) // 2 when guards were added
	for i := 1; i < len(data)-1; i++ {
		if codabarGuard(data[i]) != 0 {
			return nil, barnode.InvalidCharacter(rune(text[i-offset/2]), i-offset/2, "Codabar data characters")
		}
	}
	if check {
		sum := 0
		for _, c := range data {
			sum += strings.IndexByte(codabarAlphabet, c)
		}
		c := codabarAlphabet[(16-sum%16)%16]
		data = append(data[:len(data)-1], c, data[len(data)-1])
	}

	var b bars
	for i, c := range data {
		if i > 0 {
			b = append(b, false)
		}
		w := codabarWidths[strings.IndexByte(codabarAlphabet, c)]
		b.widths(w[:], true)
	}
	return b.symbol(string(data)), nil
}
