package oned

import (
	"strings"

	"github.com/ericlevine/barnode"
)

const code39Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// code39Encodings are 9-element patterns, one bit per element, most
// significant first; a set bit is a wide element.
var code39Encodings = [...]uint32{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064, // 0-9
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00D, 0x10C, 0x04C, 0x01C, // A-J
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016, // K-T
	0x181, 0x0C1, 0x1C0, 0x091, 0x190, 0x0D0, 0x085, 0x184, 0x0C4, 0x0A8, // U-$
	0x0A2, 0x08A, 0x02A, // /-%
}

const code39Asterisk = 0x094

// Code39Charset accepts the Code 39 alphabet; lower case letters are folded
// to upper case before encoding.
var Code39Charset = barnode.CharClass{
	Name: "Code 39 (0-9 A-Z - . space $ / + %)",
	Allows: func(r rune) bool {
		return strings.ContainsRune(code39Alphabet, r) || (r >= 'a' && r <= 'z')
	},
}

func (b *bars) code39Char(enc uint32) {
	var ws [9]int
	for i := range ws {
		ws[i] = 1
		if enc&(1<<uint(8-i)) != 0 {
			ws[i] = 2
		}
	}
	b.widths(ws[:], true)
}

// code39Check returns the mod 43 check character of data.
func code39Check(data string) byte {
	sum := 0
	for i := 0; i < len(data); i++ {
		sum += strings.IndexByte(code39Alphabet, data[i])
	}
	return code39Alphabet[sum%43]
}

// code39Modules encodes data, which must only hold alphabet characters,
// between asterisk guards.
func code39Modules(data string) bars {
	b := make(bars, 0, (len(data)+2)*13)
	b.code39Char(code39Asterisk)
	for i := 0; i < len(data); i++ {
		b = append(b, false)
		b.code39Char(code39Encodings[strings.IndexByte(code39Alphabet, data[i])])
	}
	b = append(b, false)
	b.code39Char(code39Asterisk)
	return b
}

func encodeCode39(text string, opts barnode.Options) (*barnode.Symbol, error) {
	check, err := checkOption2("Code 39", opts)
	if err != nil {
		return nil, err
	}
	data := strings.ToUpper(text)
	if check {
		data += string(code39Check(data))
	}
	return code39Modules(data).symbol("*" + data + "*"), nil
}

func encodeExtCode39(text string, opts barnode.Options) (*barnode.Symbol, error) {
	check, err := checkOption2("Extended Code 39", opts)
	if err != nil {
		return nil, err
	}
	data := code39FullASCII(text)
	if len(data) > 86 {
		return nil, barnode.Length("Extended Code 39 holds at most 86 characters after expansion, got %d", len(data))
	}
	if check {
		data += string(code39Check(data))
	}
	return code39Modules(data).symbol(printable(text)), nil
}

// code39FullASCII expands ASCII text into shift pairs of the Code 39
// alphabet.
func code39FullASCII(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == 0:
			sb.WriteString("%U")
		case c <= 26:
			sb.WriteByte('$')
			sb.WriteByte('A' + c - 1)
		case c < ' ':
			sb.WriteByte('%')
			sb.WriteByte('A' + c - 27)
		case c == ' ' || c == '-' || c == '.' || (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z'):
			sb.WriteByte(c)
		case c <= ',' || c == '/' || c == ':':
			sb.WriteByte('/')
			sb.WriteByte('A' + c - '!')
		case c <= '?':
			sb.WriteByte('%')
			sb.WriteByte('F' + c - ';')
		case c == '@':
			sb.WriteString("%V")
		case c <= '_':
			sb.WriteByte('%')
			sb.WriteByte('K' + c - '[')
		case c == '`':
			sb.WriteString("%W")
		case c <= 'z':
			sb.WriteByte('+')
			sb.WriteByte('A' + c - 'a')
		default:
			sb.WriteByte('%')
			sb.WriteByte('P' + c - '{')
		}
	}
	return sb.String()
}
