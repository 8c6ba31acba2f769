package datamatrix

// placement maps codeword bits onto the data area using the ECC 200
// diagonal "utah" arrangement and its four corner special cases.
type placement struct {
	codewords  []byte
	rows, cols int
	bits       []int8 // -1 unvisited, 0 light, 1 dark
}

func newPlacement(codewords []byte, rows, cols int) *placement {
	p := &placement{codewords: codewords, rows: rows, cols: cols, bits: make([]int8, rows*cols)}
	for i := range p.bits {
		p.bits[i] = -1
	}
	return p
}

func (p *placement) dark(row, col int) bool { return p.bits[row*p.cols+col] == 1 }

func (p *placement) visited(row, col int) bool { return p.bits[row*p.cols+col] >= 0 }

func (p *placement) set(row, col int, on bool) {
	if on {
		p.bits[row*p.cols+col] = 1
	} else {
		p.bits[row*p.cols+col] = 0
	}
}

func (p *placement) place() {
	pos, row, col := 0, 4, 0
	for {
		if row == p.rows && col == 0 {
			p.corner1(pos)
			pos++
		}
		if row == p.rows-2 && col == 0 && p.cols%4 != 0 {
			p.corner2(pos)
			pos++
		}
		if row == p.rows-2 && col == 0 && p.cols%8 == 4 {
			p.corner3(pos)
			pos++
		}
		if row == p.rows+4 && col == 2 && p.cols%8 == 0 {
			p.corner4(pos)
			pos++
		}
		for {
			if row < p.rows && col >= 0 && !p.visited(row, col) {
				p.utah(row, col, pos)
				pos++
			}
			row -= 2
			col += 2
			if row < 0 || col >= p.cols {
				break
			}
		}
		row++
		col += 3
		for {
			if row >= 0 && col < p.cols && !p.visited(row, col) {
				p.utah(row, col, pos)
				pos++
			}
			row += 2
			col -= 2
			if row >= p.rows || col < 0 {
				break
			}
		}
		row += 3
		col++
		if row >= p.rows && col >= p.cols {
			break
		}
	}
	// Sizes whose area is not a multiple of 8 leave a fixed corner pattern.
	if !p.visited(p.rows-1, p.cols-1) {
		p.set(p.rows-1, p.cols-1, true)
		p.set(p.rows-2, p.cols-2, true)
	}
}

// module places bit (0 = most significant) of codeword pos, wrapping
// positions that fall off the top or left edge.
func (p *placement) module(row, col, pos, bit int) {
	if row < 0 {
		row += p.rows
		col += 4 - (p.rows+4)%8
	}
	if col < 0 {
		col += p.cols
		row += 4 - (p.cols+4)%8
	}
	on := false
	if pos < len(p.codewords) {
		on = p.codewords[pos]&(0x80>>uint(bit)) != 0
	}
	p.set(row, col, on)
}

func (p *placement) utah(row, col, pos int) {
	p.module(row-2, col-2, pos, 0)
	p.module(row-2, col-1, pos, 1)
	p.module(row-1, col-2, pos, 2)
	p.module(row-1, col-1, pos, 3)
	p.module(row-1, col, pos, 4)
	p.module(row, col-2, pos, 5)
	p.module(row, col-1, pos, 6)
	p.module(row, col, pos, 7)
}

func (p *placement) corner1(pos int) {
	p.module(p.rows-1, 0, pos, 0)
	p.module(p.rows-1, 1, pos, 1)
	p.module(p.rows-1, 2, pos, 2)
	p.module(0, p.cols-2, pos, 3)
	p.module(0, p.cols-1, pos, 4)
	p.module(1, p.cols-1, pos, 5)
	p.module(2, p.cols-1, pos, 6)
	p.module(3, p.cols-1, pos, 7)
}

func (p *placement) corner2(pos int) {
	p.module(p.rows-3, 0, pos, 0)
	p.module(p.rows-2, 0, pos, 1)
	p.module(p.rows-1, 0, pos, 2)
	p.module(0, p.cols-4, pos, 3)
	p.module(0, p.cols-3, pos, 4)
	p.module(0, p.cols-2, pos, 5)
	p.module(0, p.cols-1, pos, 6)
	p.module(1, p.cols-1, pos, 7)
}

func (p *placement) corner3(pos int) {
	p.module(p.rows-3, 0, pos, 0)
	p.module(p.rows-2, 0, pos, 1)
	p.module(p.rows-1, 0, pos, 2)
	p.module(0, p.cols-2, pos, 3)
	p.module(0, p.cols-1, pos, 4)
	p.module(1, p.cols-1, pos, 5)
	p.module(2, p.cols-1, pos, 6)
	p.module(3, p.cols-1, pos, 7)
}

func (p *placement) corner4(pos int) {
	p.module(p.rows-1, 0, pos, 0)
	p.module(p.rows-1, p.cols-1, pos, 1)
	p.module(0, p.cols-3, pos, 2)
	p.module(0, p.cols-2, pos, 3)
	p.module(0, p.cols-1, pos, 4)
	p.module(1, p.cols-3, pos, 5)
	p.module(1, p.cols-2, pos, 6)
	p.module(1, p.cols-1, pos, 7)
}
