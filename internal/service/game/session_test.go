package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/leaderboard"
)

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) MergeAndPersist(ctx context.Context, name string, candidate leaderboard.Score) (bool, error) {
	args := m.Called(ctx, name, candidate)
	return args.Bool(0), args.Error(1)
}

// drawSequence alternates X and O and fills the board without a line.
var drawSequence = []int{
	0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 4, 2, 2, 2, 2, 2, 2, 3, 3,
	3, 3, 3, 3, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 6, 5,
}

func newSession(t *testing.T, rec Recorder) *Session {
	t.Helper()
	s, err := NewSession("Alice", "Bob", rec, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func play(t *testing.T, s *Session, columns ...int) MoveResult {
	t.Helper()
	var last MoveResult
	for _, col := range columns {
		res, err := s.Move(context.Background(), col)
		require.NoError(t, err, "column %d", col)
		last = res
	}
	return last
}

func TestVerticalWinRecordsWinnerTurns(t *testing.T) {
	rec := new(mockRecorder)
	rec.On("MergeAndPersist", mock.Anything, "Alice", leaderboard.Score(4)).Return(true, nil).Once()

	s := newSession(t, rec)
	// X in column 0 four times, O never blocks
	res := play(t, s, 0, 1, 0, 2, 0, 3, 0)

	assert.Equal(t, domain.StatusWon, res.Status)
	require.NotNil(t, res.Result)
	assert.Equal(t, Result{Winner: domain.PieceX, WinnerName: "Alice", MovesToWin: 4}, *res.Result)
	assert.True(t, res.Improved)
	assert.True(t, s.Board().CheckWin(domain.PieceX))
	assert.True(t, s.Finished())
	rec.AssertExpectations(t)

	// no second record after the game is over
	_, err := s.Move(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrGameOver)
	rec.AssertNumberOfCalls(t, "MergeAndPersist", 1)
}

func TestSecondPlayerMovesToWin(t *testing.T) {
	rec := new(mockRecorder)
	rec.On("MergeAndPersist", mock.Anything, "Bob", leaderboard.Score(4)).Return(false, nil).Once()

	s := newSession(t, rec)
	// O builds a bottom row in columns 3..6 while X scatters
	res := play(t, s, 0, 3, 0, 4, 1, 5, 1, 6)

	require.NotNil(t, res.Result)
	assert.Equal(t, "Bob", res.Result.WinnerName)
	assert.Equal(t, 4, res.Result.MovesToWin)
	assert.False(t, res.Improved)
	rec.AssertExpectations(t)
}

func TestDrawDoesNotRecord(t *testing.T) {
	rec := new(mockRecorder)
	s := newSession(t, rec)

	res := play(t, s, drawSequence...)
	assert.Equal(t, domain.StatusDraw, res.Status)
	require.NotNil(t, res.Result)
	assert.True(t, res.Result.Draw)
	assert.True(t, s.Board().IsFull())
	assert.False(t, s.Board().CheckWin(domain.PieceX))
	assert.False(t, s.Board().CheckWin(domain.PieceO))
	rec.AssertNotCalled(t, "MergeAndPersist", mock.Anything, mock.Anything, mock.Anything)
}

func TestIllegalMovesKeepTurn(t *testing.T) {
	s := newSession(t, new(mockRecorder))
	play(t, s, 2, 2, 2, 2, 2, 2)

	for _, col := range []int{2, -1, domain.Columns} {
		_, err := s.Move(context.Background(), col)
		assert.Error(t, err)
		assert.Equal(t, "Alice", s.CurrentPlayer())
	}
	assert.Equal(t, domain.PieceX, s.Current())
	assert.Nil(t, s.Result())
	assert.Equal(t, 6, s.Board().MoveCount())
}

func TestBoardCopyCannotChangeGame(t *testing.T) {
	s := newSession(t, new(mockRecorder))
	play(t, s, 3)

	b := s.Board()
	_, err := b.DropPiece(0, domain.PieceX)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Board().MoveCount())
	assert.Equal(t, domain.Empty, s.Board().Cell(0, 0))
	assert.Equal(t, domain.PieceO, s.Current())
}

func TestPersistFailureIsWarning(t *testing.T) {
	rec := new(mockRecorder)
	writeErr := fmt.Errorf("%w: disk full", leaderboard.ErrStorageWriteFailed)
	rec.On("MergeAndPersist", mock.Anything, "Alice", leaderboard.Score(4)).Return(true, writeErr).Once()

	s := newSession(t, rec)
	play(t, s, 0, 1, 0, 1, 0, 1)
	res, err := s.Move(context.Background(), 0)

	assert.ErrorIs(t, err, leaderboard.ErrStorageWriteFailed)
	require.NotNil(t, res.Result)
	assert.Equal(t, 4, res.Result.MovesToWin)
	assert.True(t, s.Finished())
	rec.AssertExpectations(t)
}

func TestNewSessionValidatesNames(t *testing.T) {
	for _, names := range [][2]string{{"", "Bob"}, {"Alice", "   "}, {"a:b", "Bob"}} {
		_, err := NewSession(names[0], names[1], nil, zerolog.Nop())
		assert.ErrorIs(t, err, ErrInvalidPlayer)
	}

	s, err := NewSession("  Alice ", "Bob", nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "Alice", s.PlayerName(domain.PieceX))
	assert.NotEmpty(t, s.GameID)
}

func TestSessionsAreIndependent(t *testing.T) {
	a := newSession(t, nil)
	b := newSession(t, nil)
	play(t, a, 3)
	assert.Equal(t, 1, a.Board().MoveCount())
	assert.Zero(t, b.Board().MoveCount())
	assert.NotEqual(t, a.GameID, b.GameID)
}

func TestServiceWithStore(t *testing.T) {
	repo := &memRepo{}
	store := leaderboard.New(repo)
	svc := NewService(store, zerolog.Nop())

	s, err := svc.NewSession("Alice", "Bob")
	require.NoError(t, err)
	play(t, s, 0, 1, 0, 1, 0, 1, 0)

	best, ok := store.Best("Alice")
	require.True(t, ok)
	assert.Equal(t, leaderboard.Score(4), best)
	_, ok = store.Best("Bob")
	assert.False(t, ok)
	assert.Equal(t, 1, repo.saves)
}

type memRepo struct {
	records []leaderboard.Record
	saves   int
}

func (m *memRepo) Load(ctx context.Context) ([]leaderboard.Record, error) {
	return m.records, nil
}

func (m *memRepo) Save(ctx context.Context, records []leaderboard.Record) error {
	m.records = records
	m.saves++
	return nil
}
