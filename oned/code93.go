package oned

import (
	"strings"

	"github.com/ericlevine/barnode"
)

// The lower case letters stand for the four shift characters.
const code93Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%abcd*"

// code93Encodings are 9-module patterns, most significant bit first.
var code93Encodings = [...]uint32{
	0x114, 0x148, 0x144, 0x142, 0x128, 0x124, 0x122, 0x150, 0x112, 0x10A, // 0-9
	0x1A8, 0x1A4, 0x1A2, 0x194, 0x192, 0x18A, 0x168, 0x164, 0x162, 0x134, // A-J
	0x11A, 0x158, 0x14C, 0x146, 0x12C, 0x116, 0x1B4, 0x1B2, 0x1AC, 0x1A6, // K-T
	0x196, 0x19A, 0x16C, 0x166, 0x136, 0x13A, // U-Z
	0x12E, 0x1D4, 0x1D2, 0x1CA, 0x16E, 0x176, 0x1AE, // - . space $ / + %
	0x126, 0x1DA, 0x1D6, 0x132, // shifts
	0x15E, // *
}

// code93Check computes a check character index with weights cycling up to
// maxWeight from the right.
func code93Check(indexes []int, maxWeight int) int {
	sum := 0
	weight := 1
	for i := len(indexes) - 1; i >= 0; i-- {
		sum += indexes[i] * weight
		weight++
		if weight > maxWeight {
			weight = 1
		}
	}
	return sum % 47
}

func encodeCode93(text string, opts barnode.Options) (*barnode.Symbol, error) {
	if err := opts.RequireUnset("Code 93", 1, 2, 3); err != nil {
		return nil, err
	}
	data := code93FullASCII(text)
	if len(data) > 123 {
		return nil, barnode.Length("Code 93 holds at most 123 characters after expansion, got %d", len(data))
	}
	indexes := make([]int, len(data), len(data)+2)
	for i := 0; i < len(data); i++ {
		indexes[i] = strings.IndexByte(code93Alphabet, data[i])
	}
	indexes = append(indexes, code93Check(indexes, 20))
	indexes = append(indexes, code93Check(indexes, 15))

	asterisk := code93Encodings[len(code93Encodings)-1]
	b := make(bars, 0, (len(indexes)+2)*9+1)
	b.bits(asterisk, 9)
	for _, idx := range indexes {
		b.bits(code93Encodings[idx], 9)
	}
	b.bits(asterisk, 9)
	b = append(b, true)
	return b.symbol(printable(text)), nil
}

// code93FullASCII maps ASCII onto the Code 93 alphabet, using a ($),
// b (%), c (/) and d (+) as shift characters.
func code93FullASCII(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == 0:
			sb.WriteString("bU")
		case c <= 26:
			sb.WriteByte('a')
			sb.WriteByte('A' + c - 1)
		case c < ' ':
			sb.WriteByte('b')
			sb.WriteByte('A' + c - 27)
		case strings.IndexByte("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%", c) >= 0:
			sb.WriteByte(c)
		case c <= ',':
			sb.WriteByte('c')
			sb.WriteByte('A' + c - '!')
		case c == ':':
			sb.WriteString("cZ")
		case c <= '?':
			sb.WriteByte('b')
			sb.WriteByte('F' + c - ';')
		case c == '@':
			sb.WriteString("bV")
		case c <= '_':
			sb.WriteByte('b')
			sb.WriteByte('K' + c - '[')
		case c == '`':
			sb.WriteString("bW")
		case c <= 'z':
			sb.WriteByte('d')
			sb.WriteByte('A' + c - 'a')
		default:
			sb.WriteByte('b')
			sb.WriteByte('P' + c - '{')
		}
	}
	return sb.String()
}
