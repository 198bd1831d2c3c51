package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/leaderboard"
	"github.com/iamasit07/connect4/pkg/uid"
)

// Recorder receives the winner of every won game.
// *leaderboard.Store satisfies it.
type Recorder interface {
	MergeAndPersist(ctx context.Context, name string, candidate leaderboard.Score) (bool, error)
}

// Result is the terminal outcome of a session.
type Result struct {
	Draw       bool         `json:"draw"`
	Winner     domain.Piece `json:"winner,omitempty"`
	WinnerName string       `json:"winner_name,omitempty"`
	MovesToWin int          `json:"moves_to_win,omitempty"`
}

// MoveResult describes one accepted move.
type MoveResult struct {
	Placement domain.Placement
	Piece     domain.Piece
	Status    domain.GameStatus
	Result    *Result // set once the game is over
	Improved  bool    // the win set a new personal best
}

// Session drives a single game between two named players. All state lives
// here so any number of sessions can exist side by side.
type Session struct {
	GameID   string
	game     *domain.Game
	players  map[domain.Piece]string
	recorder Recorder
	result   *Result
	recorded bool
	logger   zerolog.Logger
}

// NewSession starts an empty board with playerX to move first.
func NewSession(playerX, playerO string, rec Recorder, logger zerolog.Logger) (*Session, error) {
	playerX, playerO = strings.TrimSpace(playerX), strings.TrimSpace(playerO)
	for _, name := range []string{playerX, playerO} {
		if err := leaderboard.ValidateName(name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPlayer, err)
		}
	}

	gameID := uid.GenerateGameID()
	s := &Session{
		GameID: gameID,
		game:   domain.NewGame(),
		players: map[domain.Piece]string{
			domain.PieceX: playerX,
			domain.PieceO: playerO,
		},
		recorder: rec,
		logger:   logger.With().Str("component", "session").Str("game_id", gameID).Logger(),
	}
	s.logger.Info().Str("player_x", playerX).Str("player_o", playerO).Msg("game started")
	return s, nil
}

// Move plays column for the player whose turn it is. Illegal moves return
// the domain error and change nothing, so the caller can ask again.
//
// When the move wins the game the winner's own turn count is merged into
// the leaderboard. A failed write is returned as an error wrapping
// leaderboard.ErrStorageWriteFailed next to a complete MoveResult.
func (s *Session) Move(ctx context.Context, column int) (MoveResult, error) {
	piece := s.game.CurrentPlayer
	placement, err := s.game.Play(column)
	if err != nil {
		return MoveResult{}, err
	}

	res := MoveResult{
		Placement: placement,
		Piece:     piece,
		Status:    s.game.Status,
	}

	switch s.game.Status {
	case domain.StatusWon:
		s.result = &Result{
			Winner:     piece,
			WinnerName: s.players[piece],
			MovesToWin: s.game.Turns(piece),
		}
		res.Result = s.result
		s.logger.Info().Str("player", s.result.WinnerName).Int("moves", s.result.MovesToWin).Msg("game won")

		improved, err := s.record(ctx)
		res.Improved = improved
		if err != nil {
			return res, err
		}
	case domain.StatusDraw:
		s.result = &Result{Draw: true}
		res.Result = s.result
		s.logger.Info().Msg("game drawn")
	}
	return res, nil
}

// record hands the win to the recorder. It runs at most once per session.
func (s *Session) record(ctx context.Context) (bool, error) {
	if s.recorded || s.recorder == nil {
		return false, nil
	}
	s.recorded = true

	improved, err := s.recorder.MergeAndPersist(ctx, s.result.WinnerName, leaderboard.Score(s.result.MovesToWin))
	if err != nil {
		s.logger.Warn().Err(err).Str("player", s.result.WinnerName).Msg("failed to record win")
		return improved, err
	}
	if improved {
		s.logger.Info().Str("player", s.result.WinnerName).Int("moves", s.result.MovesToWin).Msg("new personal best")
	}
	return improved, nil
}

// Board returns a copy of the grid; only Move changes the game.
func (s *Session) Board() *domain.Board {
	return s.game.Board.Copy()
}

// Current is the piece to move next.
func (s *Session) Current() domain.Piece {
	return s.game.CurrentPlayer
}

func (s *Session) CurrentPlayer() string {
	return s.players[s.game.CurrentPlayer]
}

func (s *Session) PlayerName(piece domain.Piece) string {
	return s.players[piece]
}

func (s *Session) Finished() bool {
	return s.game.IsFinished()
}

// Result is nil while the game is in progress.
func (s *Session) Result() *Result {
	return s.result
}
