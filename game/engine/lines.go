package engine

// HasWin reports whether p holds WinLength consecutive discs anywhere on the
// current board: in a column, in a row, or on a diagonal of either slope.
func (g *Game) HasWin(p Player) bool {
	if p == NoPlayer {
		return false
	}
	z := g.config.WinLength
	for _, line := range g.lines() {
		if hasRun(line, p, z) {
			return true
		}
	}
	return false
}

// lines enumerates every line the win scan must cover. The set is re-derived
// deterministically from the configuration on each call.
//
// Diagonal starts range over 0 <= sx <= X-Z, 0 <= sy <= Y-Z, the minimal set
// covering every diagonal of length >= Z: the ascending diagonal runs (+1,+1)
// from (sx, sy) and the descending one (-1,+1) from (X-1-sx, sy), each
// extended to the board edge. A diagonal fully shorter than Z has no start
// inside those bounds and is never generated.
func (g *Game) lines() [][]Player {
	x, y, z := g.config.Columns, g.config.Rows, g.config.WinLength

	lines := make([][]Player, 0, x+y)
	for c := 0; c < x; c++ {
		lines = append(lines, g.grid[c])
	}
	for r := 0; r < y; r++ {
		row := make([]Player, x)
		for c := 0; c < x; c++ {
			row[c] = g.Cell(c, r)
		}
		lines = append(lines, row)
	}
	for sx := 0; sx+z <= x; sx++ {
		for sy := 0; sy+z <= y; sy++ {
			lines = append(lines,
				g.diagonal(sx, sy, 1),
				g.diagonal(x-1-sx, sy, -1))
		}
	}
	return lines
}

// diagonal walks from (startX, startY) stepping stepX horizontally and +1
// vertically until it leaves the board.
func (g *Game) diagonal(startX, startY, stepX int) []Player {
	var line []Player
	for cx, cy := startX, startY; cx >= 0 && cx < g.config.Columns && cy < g.config.Rows; cx, cy = cx+stepX, cy+1 {
		line = append(line, g.Cell(cx, cy))
	}
	return line
}

// hasRun scans a line for z consecutive cells belonging to p. Any other
// cell, including an unfilled one, resets the run.
func hasRun(line []Player, p Player, z int) bool {
	run := 0
	for _, cell := range line {
		if cell != p {
			run = 0
			continue
		}
		run++
		if run == z {
			return true
		}
	}
	return false
}
