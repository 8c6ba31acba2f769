package oned

import "github.com/ericlevine/barnode"

// itfPatterns are the five element widths of each digit; 3 is wide.
var itfPatterns = [10][5]int{
	{1, 1, 3, 3, 1}, {3, 1, 1, 1, 3}, {1, 3, 1, 1, 3}, {3, 3, 1, 1, 1}, {1, 1, 3, 1, 3},
	{3, 1, 3, 1, 1}, {1, 3, 3, 1, 1}, {1, 1, 1, 3, 3}, {3, 1, 1, 3, 1}, {1, 3, 1, 3, 1},
}

var (
	itfStart = []int{1, 1, 1, 1}
	itfStop  = []int{3, 1, 1}
)

// encodeITF encodes Interleaved 2 of 5. Digits are paired, the first digit
// of a pair drawn in the bars and the second in the spaces; odd lengths get
// a leading zero.
func encodeITF(text string, opts barnode.Options) (*barnode.Symbol, error) {
	check, err := checkOption2("Interleaved 2 of 5", opts)
	if err != nil {
		return nil, err
	}
	data := text
	if check {
		data += string(rune('0' + mod10(data)))
	}
	if len(data)%2 == 1 {
		data = "0" + data
	}

	var b bars
	b.widths(itfStart, true)
	var pair [10]int
	for i := 0; i < len(data); i += 2 {
		bar, space := itfPatterns[data[i]-'0'], itfPatterns[data[i+1]-'0']
		for j := 0; j < 5; j++ {
			pair[2*j] = bar[j]
			pair[2*j+1] = space[j]
		}
		b.widths(pair[:], true)
	}
	b.widths(itfStop, true)
	return b.symbol(data), nil
}
