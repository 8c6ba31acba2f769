package oned

import "github.com/ericlevine/barnode"

var (
	upceanGuard  = []int{1, 1, 1}
	upceanMiddle = []int{1, 1, 1, 1, 1}
	upceEnd      = []int{1, 1, 1, 1, 1, 1}
)

// upceanL holds the odd parity (L) digit patterns, starting with a space.
// Even parity (G) patterns are the L patterns reversed; right-hand (R)
// patterns are the L patterns starting with a bar.
var upceanL = [10][4]int{
	{3, 2, 1, 1}, {2, 2, 2, 1}, {2, 1, 2, 2}, {1, 4, 1, 1}, {1, 1, 3, 2},
	{1, 2, 3, 1}, {1, 1, 1, 4}, {1, 3, 1, 2}, {1, 2, 1, 3}, {3, 1, 1, 2},
}

// ean13Parity gives, per leading digit, which of the six left digits use G
// patterns (bit 5 is the first digit).
var ean13Parity = [10]uint8{0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A}

// upceParity gives, per check digit, the G pattern positions of number
// system 0. Number system 1 uses the complement.
var upceParity = [10]uint8{0x38, 0x34, 0x32, 0x31, 0x2C, 0x26, 0x23, 0x2A, 0x29, 0x25}

func (b *bars) upceanDigit(d byte, even bool) {
	p := upceanL[d-'0']
	if even {
		p[0], p[1], p[2], p[3] = p[3], p[2], p[1], p[0]
	}
	b.widths(p[:], false)
}

func (b *bars) upceanRight(d byte) {
	p := upceanL[d-'0']
	b.widths(p[:], true)
}

// completeDigits left pads digits to n-1 and appends the check digit, or
// verifies the check digit when n digits are given.
func completeDigits(name, digits string, n int) (string, error) {
	if len(digits) > n {
		return "", barnode.Length("%s takes at most %d digits, got %d", name, n, len(digits))
	}
	if len(digits) == n {
		body, got := digits[:n-1], int(digits[n-1]-'0')
		if want := mod10(body); got != want {
			return "", barnode.CheckDigit("%s check digit is %d, expected %d", name, got, want)
		}
		return digits, nil
	}
	for len(digits) < n-1 {
		digits = "0" + digits
	}
	return digits + string(rune('0'+mod10(digits))), nil
}

func ean13Modules(digits string) bars {
	b := make(bars, 0, 95)
	b.widths(upceanGuard, true)
	parity := ean13Parity[digits[0]-'0']
	for i := 1; i <= 6; i++ {
		b.upceanDigit(digits[i], parity&(1<<uint(6-i)) != 0)
	}
	b.widths(upceanMiddle, false)
	for i := 7; i <= 12; i++ {
		b.upceanRight(digits[i])
	}
	b.widths(upceanGuard, true)
	return b
}

func ean8Modules(digits string) bars {
	b := make(bars, 0, 67)
	b.widths(upceanGuard, true)
	for i := 0; i < 4; i++ {
		b.upceanDigit(digits[i], false)
	}
	b.widths(upceanMiddle, false)
	for i := 4; i < 8; i++ {
		b.upceanRight(digits[i])
	}
	b.widths(upceanGuard, true)
	return b
}

// encodeEAN picks EAN-8 for up to 8 digits (7 data digits plus an optional
// check digit) and EAN-13 for longer input.
func encodeEAN(text string, opts barnode.Options) (*barnode.Symbol, error) {
	if err := opts.RequireUnset("EAN", 1, 2, 3); err != nil {
		return nil, err
	}
	if len(text) <= 8 {
		digits, err := completeDigits("EAN-8", text, 8)
		if err != nil {
			return nil, err
		}
		return ean8Modules(digits).symbol(digits), nil
	}
	return encodeEAN13(text)
}

func encodeEAN13(text string) (*barnode.Symbol, error) {
	digits, err := completeDigits("EAN-13", text, 13)
	if err != nil {
		return nil, err
	}
	return ean13Modules(digits).symbol(digits), nil
}

func encodeUPCA(text string, opts barnode.Options) (*barnode.Symbol, error) {
	if err := opts.RequireUnset("UPC-A", 1, 2, 3); err != nil {
		return nil, err
	}
	digits, err := completeDigits("UPC-A", text, 12)
	if err != nil {
		return nil, err
	}
	return ean13Modules("0" + digits).symbol(digits), nil
}

// expandUPCE converts the number system and six UPC-E digits into the
// eleven UPC-A digits the check digit is computed over.
func expandUPCE(ns byte, d string) string {
	var body string
	switch last := d[5]; last {
	case '0', '1', '2':
		body = d[0:2] + string(last) + "0000" + d[2:5]
	case '3':
		body = d[0:3] + "00000" + d[3:5]
	case '4':
		body = d[0:4] + "00000" + d[4:5]
	default:
		body = d[0:5] + "0000" + string(last)
	}
	return string(ns) + body
}

// encodeUPCE accepts up to six digits (number system 0 implied), seven
// digits with a leading number system of 0 or 1, or eight digits ending in
// the check digit.
func encodeUPCE(text string, opts barnode.Options) (*barnode.Symbol, error) {
	if err := opts.RequireUnset("UPC-E", 1, 2, 3); err != nil {
		return nil, err
	}
	var ns byte = '0'
	data := text
	if len(text) >= 7 {
		ns, data = text[0], text[1:7]
		if ns != '0' && ns != '1' {
			return nil, barnode.InvalidCharacter(rune(ns), 0, "UPC-E number system 0 or 1")
		}
	}
	for len(data) < 6 {
		data = "0" + data
	}
	check := byte('0' + mod10(expandUPCE(ns, data)))
	if len(text) == 8 && text[7] != check {
		return nil, barnode.CheckDigit("UPC-E check digit is %c, expected %c", text[7], check)
	}

	parity := upceParity[check-'0']
	if ns == '1' {
		parity = ^parity & 0x3F
	}
	b := make(bars, 0, 51)
	b.widths(upceanGuard, true)
	for i := 0; i < 6; i++ {
		b.upceanDigit(data[i], parity&(1<<uint(5-i)) != 0)
	}
	b.widths(upceEnd, false)
	return b.symbol(string(ns) + data + string(check)), nil
}
