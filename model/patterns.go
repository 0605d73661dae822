package model

// Canonical patterns, each padded with a dead border the way they are
// usually drawn. Block, beehive and boat-style patterns are still lifes;
// blinker, toad and beacon oscillate with period 2; the pulsar with
// period 3; the glider translates across the board.

// Block returns the 4x4 still life: a 2x2 living square with a dead border.
func Block() *Grid {
	return gridFromRows([][]bool{
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	})
}

// Beehive returns the 6x5 beehive still life.
func Beehive() *Grid {
	return gridFromRows([][]bool{
		{false, false, false, false, false, false},
		{false, false, true, true, false, false},
		{false, true, false, false, true, false},
		{false, false, true, true, false, false},
		{false, false, false, false, false, false},
	})
}

// Blinker returns the 5x5 period-2 oscillator: three vertically adjacent
// living cells centered in a dead field.
func Blinker() *Grid {
	return gridFromRows([][]bool{
		{false, false, false, false, false},
		{false, false, true, false, false},
		{false, false, true, false, false},
		{false, false, true, false, false},
		{false, false, false, false, false},
	})
}

// Toad returns the 6x6 period-2 oscillator: two offset rows of three.
func Toad() *Grid {
	return gridFromRows([][]bool{
		{false, false, false, false, false, false},
		{false, false, false, false, false, false},
		{false, false, true, true, true, false},
		{false, true, true, true, false, false},
		{false, false, false, false, false, false},
		{false, false, false, false, false, false},
	})
}

// Beacon returns the 6x6 period-2 oscillator: two diagonal 2x2 blocks.
func Beacon() *Grid {
	return gridFromRows([][]bool{
		{false, false, false, false, false, false},
		{false, true, true, false, false, false},
		{false, true, true, false, false, false},
		{false, false, false, true, true, false},
		{false, false, false, true, true, false},
		{false, false, false, false, false, false},
	})
}

// Glider returns the 3x3 glider in its compact form, suitable for
// stamping onto a larger board.
func Glider() *Grid {
	return gridFromRows([][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	})
}

// Pulsar returns the 17x17 period-3 oscillator.
func Pulsar() *Grid {
	const (
		o = false
		x = true
	)
	return gridFromRows([][]bool{
		{o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o},
		{o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o},
		{o, o, o, o, x, x, x, o, o, o, x, x, x, o, o, o, o},
		{o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o},
		{o, o, x, o, o, o, o, x, o, x, o, o, o, o, x, o, o},
		{o, o, x, o, o, o, o, x, o, x, o, o, o, o, x, o, o},
		{o, o, x, o, o, o, o, x, o, x, o, o, o, o, x, o, o},
		{o, o, o, o, x, x, x, o, o, o, x, x, x, o, o, o, o},
		{o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o},
		{o, o, o, o, x, x, x, o, o, o, x, x, x, o, o, o, o},
		{o, o, x, o, o, o, o, x, o, x, o, o, o, o, x, o, o},
		{o, o, x, o, o, o, o, x, o, x, o, o, o, o, x, o, o},
		{o, o, x, o, o, o, o, x, o, x, o, o, o, o, x, o, o},
		{o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o},
		{o, o, o, o, x, x, x, o, o, o, x, x, x, o, o, o, o},
		{o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o},
		{o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o, o},
	})
}

// Stamp returns a copy of base with pattern's living cells placed at
// (x, y). Dead pattern cells leave the base alone, and living cells that
// would land outside the base are clipped, so a pattern can be stamped
// partially off the edge.
func Stamp(base *Grid, pattern *Grid, x, y int) *Grid {
	g := NewGrid(base.width, base.height)
	for row := range base.height {
		copy(g.cells[row], base.cells[row])
	}

	for py := range pattern.height {
		for px := range pattern.width {
			if !pattern.cells[py][px] {
				continue
			}
			tx, ty := x+px, y+py
			if tx >= 0 && tx < g.width && ty >= 0 && ty < g.height {
				g.cells[ty][tx] = true
			}
		}
	}
	return g
}

// gridFromRows wraps literal pattern data; rows are rectangular by
// construction.
func gridFromRows(rows [][]bool) *Grid {
	g, err := NewGridFromCells(len(rows[0]), len(rows), rows)
	if err != nil {
		panic(err)
	}
	return g
}
