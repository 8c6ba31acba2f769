package oned

import (
	"errors"
	"strings"
	"testing"

	"github.com/ericlevine/barnode"
	"github.com/ericlevine/barnode/bitutil"
)

var noOptions = barnode.Options{Option1: barnode.Unset, Option2: barnode.Unset, Option3: barnode.Unset}

func withOption2(v int) barnode.Options {
	o := noOptions
	o.Option2 = v
	return o
}

// moduleString renders the single row of a linear symbol as 1s and 0s.
func moduleString(m *bitutil.BitMatrix) string {
	var sb strings.Builder
	for x := 0; x < m.Width(); x++ {
		if m.Get(x, 0) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// widthsOf returns the run lengths of alternating bars and spaces.
func widthsOf(s string) []int {
	var ws []int
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] == s[i] {
			j++
		}
		ws = append(ws, j-i)
		i = j
	}
	return ws
}

func encodeOK(t *testing.T, enc barnode.EncoderFunc, text string, opts barnode.Options) *barnode.Symbol {
	t.Helper()
	sym, err := enc(text, opts)
	if err != nil {
		t.Fatalf("encode %q: %v", text, err)
	}
	return sym
}

func TestMod10(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{"590123412345", 7},
		{"03600029145", 2},
		{"9638507", 4},
		{"01234500006", 5},
	}
	for _, tt := range tests {
		if got := mod10(tt.body); got != tt.want {
			t.Errorf("mod10(%q) = %d, want %d", tt.body, got, tt.want)
		}
	}
}

// --- Code 128 ---

func TestCode128Values(t *testing.T) {
	tests := []struct {
		text string
		want []int
	}{
		{"12345", []int{code128StartB, 17, code128SetC, 23, 45}},
		{"1234", []int{code128StartC, 12, 34}},
		{"AB", []int{code128StartB, 33, 34}},
		{"a\tb", []int{code128StartB, 65, code128SetA, 73, code128SetB, 66}},
		{"X123456Y", []int{code128StartB, 56, code128SetC, 12, 34, 56, code128SetB, 57}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := code128Values(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("values = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("values = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestCode128Symbol(t *testing.T) {
	sym := encodeOK(t, encodeCode128, "12345", noOptions)
	// start, 4 data symbols and check at 11 modules, stop at 13.
	if w := sym.Modules.Width(); w != 6*11+13 {
		t.Fatalf("width = %d, want 79", w)
	}
	row := moduleString(sym.Modules)
	if !strings.HasPrefix(row, "11010010000") {
		t.Errorf("row should start with start B, got %s", row[:11])
	}
	if !strings.HasSuffix(row, "1100011101011") {
		t.Errorf("row should end with stop, got %s", row[len(row)-13:])
	}
	if code128Checksum([]int{code128StartB, 17, code128SetC, 23, 45}) != 53 {
		t.Error("checksum of 12345 should be 53")
	}
	if sym.Text != "12345" {
		t.Errorf("Text = %q", sym.Text)
	}
}

func TestCode128RejectsOptions(t *testing.T) {
	_, err := encodeCode128("ABC", withOption2(1))
	if !errors.Is(err, barnode.ErrInvalidOption) {
		t.Errorf("err = %v, want ErrInvalidOption", err)
	}
}

// --- Code 39 ---

func TestCode39(t *testing.T) {
	sym := encodeOK(t, encodeCode39, "ab", noOptions)
	row := moduleString(sym.Modules)
	if len(row) != 4*12+3 {
		t.Fatalf("width = %d, want 51", len(row))
	}
	const asterisk = "100101101101"
	if !strings.HasPrefix(row, asterisk+"0") || !strings.HasSuffix(row, "0"+asterisk) {
		t.Errorf("row should be framed by asterisks: %s", row)
	}
	if sym.Text != "*AB*" {
		t.Errorf("Text = %q, want *AB*", sym.Text)
	}
}

func TestCode39CheckCharacter(t *testing.T) {
	if c := code39Check("CODE39"); c != 'W' {
		t.Errorf("code39Check = %c, want W", c)
	}
	sym := encodeOK(t, encodeCode39, "CODE39", withOption2(1))
	if sym.Text != "*CODE39W*" {
		t.Errorf("Text = %q", sym.Text)
	}
	if _, err := encodeCode39("CODE39", withOption2(2)); !errors.Is(err, barnode.ErrInvalidOption) {
		t.Errorf("err = %v, want ErrInvalidOption", err)
	}
}

func TestCode39FullASCII(t *testing.T) {
	tests := map[string]string{
		"a":    "+A",
		"\x00": "%U",
		"$/":   "/D/O",
		"@`":   "%V%W",
		"A-1":  "A-1",
		"{\x7f": "%P%T",
	}
	for in, want := range tests {
		if got := code39FullASCII(in); got != want {
			t.Errorf("code39FullASCII(%q) = %q, want %q", in, got, want)
		}
	}
	sym := encodeOK(t, encodeExtCode39, "Ab", noOptions)
	if sym.Modules.Width() != 5*12+4 {
		t.Errorf("width = %d, want 64", sym.Modules.Width())
	}
}

// --- Code 93 ---

func TestCode93(t *testing.T) {
	sym := encodeOK(t, encodeCode93, "TEST93", noOptions)
	if w := sym.Modules.Width(); w != (6+4)*9+1 {
		t.Fatalf("width = %d, want 91", w)
	}
	ix := make([]int, 0, 8)
	for _, c := range "TEST93" {
		ix = append(ix, strings.IndexRune(code93Alphabet, c))
	}
	c := code93Check(ix, 20)
	k := code93Check(append(ix, c), 15)
	if code93Alphabet[c] != '+' || code93Alphabet[k] != '6' {
		t.Errorf("checks = %c%c, want +6", code93Alphabet[c], code93Alphabet[k])
	}
	row := moduleString(sym.Modules)
	if !strings.HasPrefix(row, "101011110") || !strings.HasSuffix(row, "1010111101") {
		t.Errorf("row should be framed by start/stop and termination bar: %s", row)
	}
}

func TestCode93FullASCII(t *testing.T) {
	if got := code93FullASCII("a!:$"); got != "dAcAcZ$" {
		t.Errorf("code93FullASCII = %q, want dAcAcZ$", got)
	}
}

// --- Codabar ---

func TestCodabarGuards(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"123", "A123A"},
		{"b40156d", "B40156D"},
		{"T12E", "A12D"},
	}
	for _, tt := range tests {
		sym := encodeOK(t, encodeCodabar, tt.text, noOptions)
		if sym.Text != tt.want {
			t.Errorf("%q: Text = %q, want %q", tt.text, sym.Text, tt.want)
		}
		ws := widthsOf(moduleString(sym.Modules))
		// 7 elements per character plus one gap between characters.
		if n := len(tt.want)*7 + len(tt.want) - 1; len(ws) != n {
			t.Errorf("%q: %d elements, want %d", tt.text, len(ws), n)
		}
	}
}

func TestCodabarCheckCharacter(t *testing.T) {
	// A=16, 1, 2, 3, B=17: sum 39, check (16-39%16)%16 = 9.
	sym := encodeOK(t, encodeCodabar, "A123B", withOption2(1))
	if sym.Text != "A1239B" {
		t.Errorf("Text = %q, want A1239B", sym.Text)
	}
}

func TestCodabarMisplacedGuard(t *testing.T) {
	tests := []struct {
		text string
		pos  int
	}{
		{"A12", 2},
		{"12A3", 2},
		{"A1C2B", 2},
	}
	for _, tt := range tests {
		_, err := encodeCodabar(tt.text, noOptions)
		var e *barnode.Error
		if !errors.As(err, &e) || e.Kind != barnode.KindInvalidCharacter {
			t.Errorf("%q: err = %v, want invalid character", tt.text, err)
			continue
		}
		if e.Position != tt.pos {
			t.Errorf("%q: position = %d, want %d", tt.text, e.Position, tt.pos)
		}
	}
}

// --- ITF ---

func TestITF(t *testing.T) {
	sym := encodeOK(t, encodeITF, "1234567", withOption2(1))
	if sym.Text != "12345670" {
		t.Fatalf("Text = %q, want 12345670", sym.Text)
	}
	if w := sym.Modules.Width(); w != 4+4*18+5 {
		t.Errorf("width = %d, want 81", w)
	}

	sym = encodeOK(t, encodeITF, "123", noOptions)
	if sym.Text != "0123" {
		t.Errorf("odd input should be zero padded, got %q", sym.Text)
	}
	ws := widthsOf(moduleString(sym.Modules))
	// Start guard, then "01": bars from 0 (nnwwn), spaces from 1 (wnnnw).
	want := []int{1, 1, 1, 1, 1, 3, 1, 1, 3, 1, 3, 1, 1, 3}
	for i, w := range want {
		if ws[i] != w {
			t.Fatalf("widths = %v, want prefix %v", ws[:len(want)], want)
		}
	}
}

// --- UPC/EAN ---

// decodeEAN13 reads the digits back from a 95 module EAN-13 row.
func decodeEAN13(t *testing.T, row string) string {
	t.Helper()
	if len(row) != 95 || row[:3] != "101" || row[45:50] != "01010" || row[92:] != "101" {
		t.Fatalf("bad guards in %s", row)
	}
	patterns := map[string]int{}
	for d, p := range upceanL {
		var l, g bars
		l.widths(p[:], false)
		g.widths([]int{p[3], p[2], p[1], p[0]}, false)
		patterns[moduleString(bitutil.FromBools(l))] = d
		patterns[moduleString(bitutil.FromBools(g))] = d + 10
	}
	var digits []byte
	parity := uint8(0)
	for i := 0; i < 6; i++ {
		v, ok := patterns[row[3+7*i:10+7*i]]
		if !ok {
			t.Fatalf("left digit %d not decodable", i)
		}
		parity <<= 1
		if v >= 10 {
			parity |= 1
			v -= 10
		}
		digits = append(digits, byte('0'+v))
	}
	first := -1
	for d, p := range ean13Parity {
		if p == parity {
			first = d
		}
	}
	for i := 0; i < 6; i++ {
		chunk := row[50+7*i : 57+7*i]
		inverted := strings.Map(func(r rune) rune { return '0' + '1' - r }, chunk)
		v, ok := patterns[inverted]
		if !ok || v >= 10 {
			t.Fatalf("right digit %d not decodable", i)
		}
		digits = append(digits, byte('0'+v))
	}
	return string(rune('0'+first)) + string(digits)
}

func TestEAN13(t *testing.T) {
	for _, in := range []string{"590123412345", "5901234123457", "4006381333931"} {
		sym := encodeOK(t, encodeEAN, in, noOptions)
		got := decodeEAN13(t, moduleString(sym.Modules))
		if got != sym.Text || !strings.HasPrefix(got, in[:12]) {
			t.Errorf("%s: decoded %s, text %s", in, got, sym.Text)
		}
	}
}

func TestEAN13BadCheckDigit(t *testing.T) {
	_, err := encodeEAN("5901234123458", noOptions)
	if !errors.Is(err, barnode.ErrCheckDigit) {
		t.Fatalf("err = %v, want ErrCheckDigit", err)
	}
	if barnode.Code(err) != barnode.CodeInvalidCheck {
		t.Errorf("code = %d", barnode.Code(err))
	}
}

func TestEAN8(t *testing.T) {
	sym := encodeOK(t, encodeEAN, "9638507", noOptions)
	if sym.Text != "96385074" {
		t.Errorf("Text = %q, want 96385074", sym.Text)
	}
	if sym.Modules.Width() != 67 {
		t.Errorf("width = %d, want 67", sym.Modules.Width())
	}
	sym = encodeOK(t, encodeEAN, "12", noOptions)
	if len(sym.Text) != 8 || !strings.HasPrefix(sym.Text, "0000012") {
		t.Errorf("short input should be zero padded, got %q", sym.Text)
	}
}

func TestUPCA(t *testing.T) {
	sym := encodeOK(t, encodeUPCA, "03600029145", noOptions)
	if sym.Text != "036000291452" {
		t.Fatalf("Text = %q, want 036000291452", sym.Text)
	}
	if got := decodeEAN13(t, moduleString(sym.Modules)); got != "0036000291452" {
		t.Errorf("decoded %s", got)
	}
}

func TestUPCE(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"123456", "01234565"},
		{"01234565", "01234565"},
		{"1234567", "12345670"},
	}
	for _, tt := range tests {
		sym := encodeOK(t, encodeUPCE, tt.in, noOptions)
		if sym.Text != tt.want {
			t.Errorf("%s: Text = %q, want %q", tt.in, sym.Text, tt.want)
		}
		if sym.Modules.Width() != 51 {
			t.Errorf("%s: width = %d, want 51", tt.in, sym.Modules.Width())
		}
	}
	if _, err := encodeUPCE("01234567", noOptions); !errors.Is(err, barnode.ErrCheckDigit) {
		t.Errorf("err = %v, want ErrCheckDigit", err)
	}
	if _, err := encodeUPCE("2123456", noOptions); !errors.Is(err, barnode.ErrInvalidCharacter) {
		t.Errorf("err = %v, want ErrInvalidCharacter", err)
	}
}

func TestExpandUPCE(t *testing.T) {
	tests := map[string]string{
		"123450": "01200000345",
		"123453": "01230000045",
		"123454": "01234000005",
		"123456": "01234500006",
	}
	for in, want := range tests {
		if got := expandUPCE('0', in); got != want {
			t.Errorf("expandUPCE(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestRegisteredDescriptors(t *testing.T) {
	for _, s := range []barnode.Symbology{3, 8, 9, 13, 18, 20, 25, 34, 37} {
		d, err := barnode.Lookup(s)
		if err != nil {
			t.Errorf("Lookup(%d): %v", s, err)
			continue
		}
		if !d.Linear || d.BarHeight != barHeight || d.QuietZone != quietZone {
			t.Errorf("%s: descriptor = %+v", d.Name, d)
		}
	}
}
