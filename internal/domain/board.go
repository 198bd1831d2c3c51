package domain

// Board is the 6x7 grid. Row 0 is the bottom row, so pieces settle toward
// index 0 and a column is always filled from row 0 upward.
type Board struct {
	cells [Rows][Columns]Piece
}

func NewBoard() *Board {
	return &Board{}
}

func validColumn(column int) bool {
	return column >= 0 && column < Columns
}

// Cell returns the piece at row, column or Empty when out of range.
func (b *Board) Cell(row, column int) Piece {
	if row < 0 || row >= Rows || !validColumn(column) {
		return Empty
	}
	return b.cells[row][column]
}

// AvailableRow returns the lowest empty row of column. The boolean is false
// when the column is full or out of range.
func (b *Board) AvailableRow(column int) (int, bool) {
	if !validColumn(column) {
		return -1, false
	}
	for row := 0; row < Rows; row++ {
		if b.cells[row][column] == Empty {
			return row, true
		}
	}
	return -1, false
}

// DropPiece is the only mutator of a board. On error the grid is unchanged.
func (b *Board) DropPiece(column int, piece Piece) (Placement, error) {
	if !validColumn(column) {
		return Placement{}, ErrInvalidColumn
	}
	if piece != PieceX && piece != PieceO {
		return Placement{}, ErrInvalidPiece
	}

	row, ok := b.AvailableRow(column)
	if !ok {
		return Placement{}, ErrColumnFull
	}
	b.cells[row][column] = piece
	return Placement{Row: row, Column: column}, nil
}

// IsFull reports whether every cell of the grid holds a piece.
func (b *Board) IsFull() bool {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.cells[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

// MoveCount is the number of pieces on the board.
func (b *Board) MoveCount() int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.cells[row][col] != Empty {
				count++
			}
		}
	}
	return count
}

// this creates a deep copy of the board
func (b *Board) Copy() *Board {
	cp := *b
	return &cp
}

// ValidColumns lists the columns that still accept a piece
func (b *Board) ValidColumns() []int {
	columns := []int{}
	for col := 0; col < Columns; col++ {
		if _, ok := b.AvailableRow(col); ok {
			columns = append(columns, col)
		}
	}
	return columns
}

// Grid returns a copy of the cells, row 0 first.
func (b *Board) Grid() [Rows][Columns]Piece {
	return b.cells
}
