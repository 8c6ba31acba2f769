package datamatrix

// symbolInfo describes one ECC 200 symbol size.
type symbolInfo struct {
	rectangular  bool
	dataCapacity int // data codewords over all blocks
	ecCodewords  int // EC codewords over all blocks
	width        int // modules, finder patterns included
	height       int
	regionRows   int // data modules per region, vertically
	regionCols   int
	blockData    int // data codewords per RS block
	blockEC      int // EC codewords per RS block
	blockData2   int // data codewords of the trailing short blocks, if any
	numBlocks2   int
}

func (si *symbolInfo) blockCount() int {
	if si.blockData2 == 0 {
		return si.dataCapacity / si.blockData
	}
	return (si.dataCapacity-si.numBlocks2*si.blockData2)/si.blockData + si.numBlocks2
}

func (si *symbolInfo) regionsH() int { return si.width / (si.regionCols + 2) }

func (si *symbolInfo) regionsV() int { return si.height / (si.regionRows + 2) }

// mappingRows and mappingCols give the size of the data area with the
// finder and clock patterns of every region removed.
func (si *symbolInfo) mappingRows() int { return si.regionsV() * si.regionRows }

func (si *symbolInfo) mappingCols() int { return si.regionsH() * si.regionCols }

// symbols lists the sizes in option2 order: 24 square sizes, then the
// 6 rectangular ones.
var symbols = []symbolInfo{
	{false, 3, 5, 10, 10, 8, 8, 3, 5, 0, 0},
	{false, 5, 7, 12, 12, 10, 10, 5, 7, 0, 0},
	{false, 8, 10, 14, 14, 12, 12, 8, 10, 0, 0},
	{false, 12, 12, 16, 16, 14, 14, 12, 12, 0, 0},
	{false, 18, 14, 18, 18, 16, 16, 18, 14, 0, 0},
	{false, 22, 18, 20, 20, 18, 18, 22, 18, 0, 0},
	{false, 30, 20, 22, 22, 20, 20, 30, 20, 0, 0},
	{false, 36, 24, 24, 24, 22, 22, 36, 24, 0, 0},
	{false, 44, 28, 26, 26, 24, 24, 44, 28, 0, 0},
	{false, 62, 36, 32, 32, 14, 14, 62, 36, 0, 0},
	{false, 86, 42, 36, 36, 16, 16, 86, 42, 0, 0},
	{false, 114, 48, 40, 40, 18, 18, 114, 48, 0, 0},
	{false, 144, 56, 44, 44, 20, 20, 144, 56, 0, 0},
	{false, 174, 68, 48, 48, 22, 22, 174, 68, 0, 0},
	{false, 204, 84, 52, 52, 24, 24, 102, 42, 0, 0},
	{false, 280, 112, 64, 64, 14, 14, 140, 56, 0, 0},
	{false, 368, 144, 72, 72, 16, 16, 92, 36, 0, 0},
	{false, 456, 192, 80, 80, 18, 18, 114, 48, 0, 0},
	{false, 576, 224, 88, 88, 20, 20, 144, 56, 0, 0},
	{false, 696, 272, 96, 96, 22, 22, 174, 68, 0, 0},
	{false, 816, 336, 104, 104, 24, 24, 136, 56, 0, 0},
	{false, 1050, 408, 120, 120, 18, 18, 175, 68, 0, 0},
	{false, 1304, 496, 132, 132, 20, 20, 163, 62, 0, 0},
	{false, 1558, 620, 144, 144, 22, 22, 156, 62, 155, 2},

	{true, 5, 7, 18, 8, 6, 16, 5, 7, 0, 0},
	{true, 10, 11, 32, 8, 6, 14, 10, 11, 0, 0},
	{true, 16, 14, 26, 12, 10, 24, 16, 14, 0, 0},
	{true, 22, 18, 36, 12, 10, 16, 22, 18, 0, 0},
	{true, 32, 24, 36, 16, 14, 16, 32, 24, 0, 0},
	{true, 49, 28, 48, 16, 14, 22, 49, 28, 0, 0},
}

// lookup returns the smallest symbol holding n data codewords. Square
// sizes win ties with rectangular ones.
func lookup(n int, squareOnly bool) *symbolInfo {
	var best *symbolInfo
	for i := range symbols {
		si := &symbols[i]
		if squareOnly && si.rectangular {
			continue
		}
		if si.dataCapacity >= n && (best == nil || si.dataCapacity < best.dataCapacity) {
			best = si
		}
	}
	return best
}
