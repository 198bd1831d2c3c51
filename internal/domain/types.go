package domain

// Piece is the content of a single board cell.
type Piece int

const (
	Empty  Piece = 0
	PieceX Piece = 1
	PieceO Piece = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Other returns the opponent of p. Empty has no opponent.
func (p Piece) Other() Piece {
	switch p {
	case PieceX:
		return PieceO
	case PieceO:
		return PieceX
	}
	return Empty
}

func (p Piece) String() string {
	switch p {
	case PieceX:
		return "X"
	case PieceO:
		return "O"
	}
	return "-"
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "invalid column"
	ErrColumnFull    Error = "column is full"
	ErrInvalidPiece  Error = "invalid piece"
	ErrGameOver      Error = "game is already over"
)

// Placement is where a dropped piece came to rest.
type Placement struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}
