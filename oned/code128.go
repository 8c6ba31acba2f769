package oned

import (
	"strings"

	"github.com/ericlevine/barnode"
)

// code128Patterns holds the bar/space widths of each symbol value.
var code128Patterns = [107][]int{
	{2, 1, 2, 2, 2, 2}, {2, 2, 2, 1, 2, 2}, {2, 2, 2, 2, 2, 1}, {1, 2, 1, 2, 2, 3},
	{1, 2, 1, 3, 2, 2}, {1, 3, 1, 2, 2, 2}, {1, 2, 2, 2, 1, 3}, {1, 2, 2, 3, 1, 2},
	{1, 3, 2, 2, 1, 2}, {2, 2, 1, 2, 1, 3}, {2, 2, 1, 3, 1, 2}, {2, 3, 1, 2, 1, 2},
	{1, 1, 2, 2, 3, 2}, {1, 2, 2, 1, 3, 2}, {1, 2, 2, 2, 3, 1}, {1, 1, 3, 2, 2, 2},
	{1, 2, 3, 1, 2, 2}, {1, 2, 3, 2, 2, 1}, {2, 2, 3, 2, 1, 1}, {2, 2, 1, 1, 3, 2},
	{2, 2, 1, 2, 3, 1}, {2, 1, 3, 2, 1, 2}, {2, 2, 3, 1, 1, 2}, {3, 1, 2, 1, 3, 1},
	{3, 1, 1, 2, 2, 2}, {3, 2, 1, 1, 2, 2}, {3, 2, 1, 2, 2, 1}, {3, 1, 2, 2, 1, 2},
	{3, 2, 2, 1, 1, 2}, {3, 2, 2, 2, 1, 1}, {2, 1, 2, 1, 2, 3}, {2, 1, 2, 3, 2, 1},
	{2, 3, 2, 1, 2, 1}, {1, 1, 1, 3, 2, 3}, {1, 3, 1, 1, 2, 3}, {1, 3, 1, 3, 2, 1},
	{1, 1, 2, 3, 1, 3}, {1, 3, 2, 1, 1, 3}, {1, 3, 2, 3, 1, 1}, {2, 1, 1, 3, 1, 3},
	{2, 3, 1, 1, 1, 3}, {2, 3, 1, 3, 1, 1}, {1, 1, 2, 1, 3, 3}, {1, 1, 2, 3, 3, 1},
	{1, 3, 2, 1, 3, 1}, {1, 1, 3, 1, 2, 3}, {1, 1, 3, 3, 2, 1}, {1, 3, 3, 1, 2, 1},
	{3, 1, 3, 1, 2, 1}, {2, 1, 1, 3, 3, 1}, {2, 3, 1, 1, 3, 1}, {2, 1, 3, 1, 1, 3},
	{2, 1, 3, 3, 1, 1}, {2, 1, 3, 1, 3, 1}, {3, 1, 1, 1, 2, 3}, {3, 1, 1, 3, 2, 1},
	{3, 3, 1, 1, 2, 1}, {3, 1, 2, 1, 1, 3}, {3, 1, 2, 3, 1, 1}, {3, 3, 2, 1, 1, 1},
	{3, 1, 4, 1, 1, 1}, {2, 2, 1, 4, 1, 1}, {4, 3, 1, 1, 1, 1}, {1, 1, 1, 2, 2, 4},
	{1, 1, 1, 4, 2, 2}, {1, 2, 1, 1, 2, 4}, {1, 2, 1, 4, 2, 1}, {1, 4, 1, 1, 2, 2},
	{1, 4, 1, 2, 2, 1}, {1, 1, 2, 2, 1, 4}, {1, 1, 2, 4, 1, 2}, {1, 2, 2, 1, 1, 4},
	{1, 2, 2, 4, 1, 1}, {1, 4, 2, 1, 1, 2}, {1, 4, 2, 2, 1, 1}, {2, 4, 1, 2, 1, 1},
	{2, 2, 1, 1, 1, 4}, {4, 1, 3, 1, 1, 1}, {2, 4, 1, 1, 1, 2}, {1, 3, 4, 1, 1, 1},
	{1, 1, 1, 2, 4, 2}, {1, 2, 1, 1, 4, 2}, {1, 2, 1, 2, 4, 1}, {1, 1, 4, 2, 1, 2},
	{1, 2, 4, 1, 1, 2}, {1, 2, 4, 2, 1, 1}, {4, 1, 1, 2, 1, 2}, {4, 2, 1, 1, 1, 2},
	{4, 2, 1, 2, 1, 1}, {2, 1, 2, 1, 4, 1}, {2, 1, 4, 1, 2, 1}, {4, 1, 2, 1, 2, 1},
	{1, 1, 1, 1, 4, 3}, {1, 1, 1, 3, 4, 1}, {1, 3, 1, 1, 4, 1}, {1, 1, 4, 1, 1, 3},
	{1, 1, 4, 3, 1, 1}, {4, 1, 1, 1, 1, 3}, {4, 1, 1, 3, 1, 1}, {1, 1, 3, 1, 4, 1},
	{1, 1, 4, 1, 3, 1}, {3, 1, 1, 1, 4, 1}, {4, 1, 1, 1, 3, 1},
	{2, 1, 1, 4, 1, 2},    // start A
	{2, 1, 1, 2, 1, 4},    // start B
	{2, 1, 1, 2, 3, 2},    // start C
	{2, 3, 3, 1, 1, 1, 2}, // stop
}

// Code set switch values double as the code set identifiers.
const (
	code128SetC   = 99
	code128SetB   = 100
	code128SetA   = 101
	code128StartA = 103
	code128StartB = 104
	code128StartC = 105
	code128Stop   = 106
)

func digitRun(s string, i int) int {
	n := 0
	for i+n < len(s) && s[i+n] >= '0' && s[i+n] <= '9' {
		n++
	}
	return n
}

// chooseCode128Set picks the code set for the character at i. Code C is
// entered for an even run of at least four digits, or for a run that pairs
// up exactly from the start of the data.
func chooseCode128Set(s string, i, current int) int {
	run := digitRun(s, i)
	switch {
	case current == code128SetC && run >= 2:
		return code128SetC
	case run >= 2 && run%2 == 0 && (run >= 4 || (current == 0 && run == len(s))):
		return code128SetC
	}
	c := s[i]
	switch {
	case c < ' ':
		return code128SetA
	case c >= '`':
		return code128SetB
	case current == code128SetA || current == code128SetB:
		return current
	default:
		return code128SetB
	}
}

func code128Value(set int, c byte) int {
	if set == code128SetA && c < ' ' {
		return int(c) + 64
	}
	return int(c) - ' '
}

// code128Values returns the symbol values of s from the start character up
// to, but not including, the check character.
func code128Values(s string) []int {
	values := make([]int, 0, len(s)+2)
	set := 0
	for i := 0; i < len(s); {
		next := chooseCode128Set(s, i, set)
		if next != set {
			if set == 0 {
				switch next {
				case code128SetA:
					values = append(values, code128StartA)
				case code128SetB:
					values = append(values, code128StartB)
				default:
					values = append(values, code128StartC)
				}
			} else {
				values = append(values, next)
			}
			set = next
		}
		if set == code128SetC {
			values = append(values, int(s[i]-'0')*10+int(s[i+1]-'0'))
			i += 2
			continue
		}
		values = append(values, code128Value(set, s[i]))
		i++
	}
	return values
}

func code128Checksum(values []int) int {
	sum := values[0]
	for i := 1; i < len(values); i++ {
		sum += values[i] * i
	}
	return sum % 103
}

func encodeCode128(text string, opts barnode.Options) (*barnode.Symbol, error) {
	if err := opts.RequireUnset("Code 128", 1, 2, 3); err != nil {
		return nil, err
	}
	values := code128Values(text)
	values = append(values, code128Checksum(values), code128Stop)

	var b bars
	for _, v := range values {
		b.widths(code128Patterns[v], true)
	}
	return b.symbol(printable(text)), nil
}

// printable replaces control characters for display in the text row.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r < ' ' || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}
