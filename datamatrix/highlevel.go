package datamatrix

const (
	asciiPad        = 129
	asciiDigitPairs = 130
	asciiUpperShift = 235
	eciDesignator   = 241
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// encodeASCII produces ASCII encodation codewords: digit pairs are packed
// into one codeword and bytes above 127 use the upper shift.
func encodeASCII(data []byte) []byte {
	out := make([]byte, 0, len(data)+1)
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case i+1 < len(data) && isDigit(c) && isDigit(data[i+1]):
			out = append(out, asciiDigitPairs+(c-'0')*10+(data[i+1]-'0'))
			i++
		case c >= 128:
			out = append(out, asciiUpperShift, c-128+1)
		default:
			out = append(out, c+1)
		}
	}
	return out
}

// eciCodewords returns the ECI designator and its one to three value
// codewords.
func eciCodewords(value int) []byte {
	switch {
	case value <= 126:
		return []byte{eciDesignator, byte(value + 1)}
	case value <= 16382:
		v := value - 127
		return []byte{eciDesignator, byte(v/254 + 128), byte(v%254 + 1)}
	default:
		v := value - 16383
		return []byte{eciDesignator, byte(v/64516 + 192), byte((v/254)%254 + 1), byte(v%254 + 1)}
	}
}

// pad fills codewords up to capacity. The first pad is 129; the rest are
// scrambled with the 253-state algorithm keyed on their 1-based position.
func pad(codewords []byte, capacity int) []byte {
	if len(codewords) < capacity {
		codewords = append(codewords, asciiPad)
	}
	for len(codewords) < capacity {
		pos := len(codewords) + 1
		v := asciiPad + (149*pos)%253 + 1
		if v > 254 {
			v -= 254
		}
		codewords = append(codewords, byte(v))
	}
	return codewords
}
