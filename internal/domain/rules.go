package domain

// direction describes one line orientation and the bounds of the cells a
// 4-window may start from, so that the whole window stays on the grid.
type direction struct {
	dRow, dCol       int
	rowStart, rowEnd int
	colStart, colEnd int
}

var directions = [...]direction{
	// horizontal
	{dRow: 0, dCol: 1, rowStart: 0, rowEnd: Rows, colStart: 0, colEnd: Columns - ToWin + 1},
	// vertical
	{dRow: 1, dCol: 0, rowStart: 0, rowEnd: Rows - ToWin + 1, colStart: 0, colEnd: Columns},
	// diagonal up-right
	{dRow: 1, dCol: 1, rowStart: 0, rowEnd: Rows - ToWin + 1, colStart: 0, colEnd: Columns - ToWin + 1},
	// diagonal down-right
	{dRow: -1, dCol: 1, rowStart: ToWin - 1, rowEnd: Rows, colStart: 0, colEnd: Columns - ToWin + 1},
}

// CheckWin reports whether piece owns any complete 4-window.
func (b *Board) CheckWin(piece Piece) bool {
	_, ok := b.WinningLine(piece)
	return ok
}

// WinningLine returns the cells of the first 4-window owned by piece.
func (b *Board) WinningLine(piece Piece) ([]Placement, bool) {
	if piece == Empty {
		return nil, false
	}

	for _, d := range directions {
		for row := d.rowStart; row < d.rowEnd; row++ {
			for col := d.colStart; col < d.colEnd; col++ {
				if b.windowOwnedBy(row, col, d, piece) {
					line := make([]Placement, ToWin)
					for i := range line {
						line[i] = Placement{Row: row + i*d.dRow, Column: col + i*d.dCol}
					}
					return line, true
				}
			}
		}
	}
	return nil, false
}

func (b *Board) windowOwnedBy(row, col int, d direction, piece Piece) bool {
	for i := 0; i < ToWin; i++ {
		if b.cells[row+i*d.dRow][col+i*d.dCol] != piece {
			return false
		}
	}
	return true
}
