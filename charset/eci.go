// Package charset maps Extended Channel Interpretation (ECI) designators to
// text encodings and converts symbol text into the byte data of matrix
// symbologies.
package charset

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownECI indicates an ECI designator with no supported encoding.
var ErrUnknownECI = errors.New("charset: unsupported ECI value")

// ECI is a character set designator together with its encoding.
type ECI struct {
	Value int
	Name  string
	enc   encoding.Encoding
}

// Well-known designators.
var (
	ISO8859_1 = &ECI{3, "ISO-8859-1", charmap.ISO8859_1}
	UTF8      = &ECI{26, "UTF-8", unicode.UTF8}
)

var byValue = map[int]*ECI{
	3:  ISO8859_1,
	4:  {4, "ISO-8859-2", charmap.ISO8859_2},
	5:  {5, "ISO-8859-3", charmap.ISO8859_3},
	6:  {6, "ISO-8859-4", charmap.ISO8859_4},
	7:  {7, "ISO-8859-5", charmap.ISO8859_5},
	8:  {8, "ISO-8859-6", charmap.ISO8859_6},
	9:  {9, "ISO-8859-7", charmap.ISO8859_7},
	10: {10, "ISO-8859-8", charmap.ISO8859_8},
	11: {11, "ISO-8859-9", charmap.ISO8859_9},
	12: {12, "ISO-8859-10", charmap.ISO8859_10},
	15: {15, "ISO-8859-13", charmap.ISO8859_13},
	16: {16, "ISO-8859-14", charmap.ISO8859_14},
	17: {17, "ISO-8859-15", charmap.ISO8859_15},
	18: {18, "ISO-8859-16", charmap.ISO8859_16},
	20: {20, "Shift_JIS", japanese.ShiftJIS},
	21: {21, "windows-1250", charmap.Windows1250},
	22: {22, "windows-1251", charmap.Windows1251},
	23: {23, "windows-1252", charmap.Windows1252},
	24: {24, "windows-1256", charmap.Windows1256},
	25: {25, "UTF-16BE", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	26: UTF8,
	28: {28, "Big5", traditionalchinese.Big5},
	29: {29, "GB2312", simplifiedchinese.GBK},
	30: {30, "EUC-KR", korean.EUCKR},
	32: {32, "GB18030", simplifiedchinese.GB18030},
}

// Lookup returns the ECI registered for value.
func Lookup(value int) (*ECI, error) {
	if e, ok := byValue[value]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownECI, value)
}

// UnencodableError reports the first rune of a text that the chosen
// character set cannot represent.
type UnencodableError struct {
	Charset  string
	Char     rune
	Position int
}

func (e *UnencodableError) Error() string {
	return fmt.Sprintf("charset: %q at position %d is not representable in %s", e.Char, e.Position, e.Charset)
}

// Encode converts text to bytes in the ECI's character set.
func (e *ECI) Encode(text string) ([]byte, error) {
	enc := e.enc.NewEncoder()
	out := make([]byte, 0, len(text))
	pos := 0
	for _, r := range text {
		if r == utf8.RuneError {
			return nil, &UnencodableError{Charset: e.Name, Char: r, Position: pos}
		}
		b, err := enc.Bytes([]byte(string(r)))
		if err != nil {
			return nil, &UnencodableError{Charset: e.Name, Char: r, Position: pos}
		}
		out = append(out, b...)
		pos++
	}
	return out, nil
}

// Select picks the character set for text and encodes it. A forced value
// of 0 chooses ISO-8859-1 when every rune is representable and UTF-8
// otherwise. The returned ECI is nil when no designator needs to be written
// because the data is in the symbology's default ISO-8859-1 interpretation.
func Select(text string, forced int) (*ECI, []byte, error) {
	if forced != 0 {
		e, err := Lookup(forced)
		if err != nil {
			return nil, nil, err
		}
		data, err := e.Encode(text)
		if err != nil {
			return nil, nil, err
		}
		return e, data, nil
	}
	if data, err := ISO8859_1.Encode(text); err == nil {
		return nil, data, nil
	}
	data, err := UTF8.Encode(text)
	if err != nil {
		return nil, nil, err
	}
	return UTF8, data, nil
}
