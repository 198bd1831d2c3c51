package domain

// Game is the per-game state machine: active until a win or a full board.
type Game struct {
	Board         *Board
	CurrentPlayer Piece
	Status        GameStatus
	Winner        Piece
	MoveCount     int
	turns         [3]int // indexed by Piece
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: PieceX,
		Status:        StatusActive,
		Winner:        Empty,
	}
}

// Play drops the current player's piece into column. A rejected move leaves
// the game untouched so the same player can try again.
func (g *Game) Play(column int) (Placement, error) {
	if g.IsFinished() {
		return Placement{}, ErrGameOver
	}

	placement, err := g.Board.DropPiece(column, g.CurrentPlayer)
	if err != nil {
		return Placement{}, err
	}

	g.MoveCount++
	g.turns[g.CurrentPlayer]++

	// win has to be checked before full: a full board with a line is a win
	if g.Board.CheckWin(g.CurrentPlayer) {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		return placement, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return placement, nil
	}

	g.CurrentPlayer = g.CurrentPlayer.Other()
	return placement, nil
}

// Turns is the number of moves made by piece alone.
func (g *Game) Turns(piece Piece) int {
	if piece != PieceX && piece != PieceO {
		return 0
	}
	return g.turns[piece]
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
