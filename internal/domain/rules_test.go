package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFrom builds a board by setting cells directly. Tests use it to place
// lines anywhere without simulating a full game.
func boardFrom(cells map[Placement]Piece) *Board {
	b := NewBoard()
	for p, piece := range cells {
		b.cells[p.Row][p.Column] = piece
	}
	return b
}

func TestCheckWinEmptyBoard(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.CheckWin(PieceX))
	assert.False(t, b.CheckWin(PieceO))
	assert.False(t, b.CheckWin(Empty))
}

func TestCheckWinEachOrientation(t *testing.T) {
	tests := []struct {
		name string
		line []Placement
	}{
		{"horizontal bottom left", []Placement{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
		{"horizontal top right", []Placement{{5, 3}, {5, 4}, {5, 5}, {5, 6}}},
		{"vertical", []Placement{{0, 6}, {1, 6}, {2, 6}, {3, 6}}},
		{"vertical top", []Placement{{2, 0}, {3, 0}, {4, 0}, {5, 0}}},
		{"diagonal up-right", []Placement{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"diagonal up-right corner", []Placement{{2, 3}, {3, 4}, {4, 5}, {5, 6}}},
		{"diagonal down-right", []Placement{{3, 0}, {2, 1}, {1, 2}, {0, 3}}},
		{"diagonal down-right corner", []Placement{{5, 3}, {4, 4}, {3, 5}, {2, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := map[Placement]Piece{}
			for _, p := range tt.line {
				cells[p] = PieceO
			}
			b := boardFrom(cells)
			assert.True(t, b.CheckWin(PieceO))
			assert.False(t, b.CheckWin(PieceX))

			line, ok := b.WinningLine(PieceO)
			require.True(t, ok)
			assert.ElementsMatch(t, tt.line, line)
		})
	}
}

func TestCheckWinThreeIsNotEnough(t *testing.T) {
	b := boardFrom(map[Placement]Piece{
		{0, 0}: PieceX, {0, 1}: PieceX, {0, 2}: PieceX, {0, 3}: PieceO,
		{1, 0}: PieceX, {2, 0}: PieceX, {3, 0}: PieceO,
		{1, 1}: PieceX, {2, 2}: PieceX, {3, 3}: PieceO,
	})
	assert.False(t, b.CheckWin(PieceX))
	assert.False(t, b.CheckWin(PieceO))
}

func TestCheckWinRandomRuns(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 500; i++ {
		d := directions[rng.IntN(len(directions))]
		row := d.rowStart + rng.IntN(d.rowEnd-d.rowStart)
		col := d.colStart + rng.IntN(d.colEnd-d.colStart)

		// extend the run while it stays on the grid, length >= 4
		length := ToWin
		for {
			r, c := row+length*d.dRow, col+length*d.dCol
			if r < 0 || r >= Rows || c < 0 || c >= Columns || rng.IntN(2) == 0 {
				break
			}
			length++
		}

		piece := PieceX
		if rng.IntN(2) == 0 {
			piece = PieceO
		}
		cells := map[Placement]Piece{}
		for k := 0; k < length; k++ {
			cells[Placement{Row: row + k*d.dRow, Column: col + k*d.dCol}] = piece
		}
		b := boardFrom(cells)
		assert.True(t, b.CheckWin(piece), "run of %d from (%d,%d) step (%d,%d)", length, row, col, d.dRow, d.dCol)
		assert.False(t, b.CheckWin(piece.Other()))
	}
}

func TestCheckWinFullBoardWithoutLine(t *testing.T) {
	b := drawBoard(t)
	assert.False(t, b.CheckWin(PieceX))
	assert.False(t, b.CheckWin(PieceO))
}

func TestDirectionBoundsStayOnGrid(t *testing.T) {
	for _, d := range directions {
		for row := d.rowStart; row < d.rowEnd; row++ {
			for col := d.colStart; col < d.colEnd; col++ {
				endRow, endCol := row+(ToWin-1)*d.dRow, col+(ToWin-1)*d.dCol
				assert.True(t, endRow >= 0 && endRow < Rows && endCol >= 0 && endCol < Columns)
			}
		}
	}
}
