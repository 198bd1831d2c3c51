package http

import (
	"iter"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect4/internal/leaderboard"
)

// LeaderboardReader is the read side of the leaderboard store.
type LeaderboardReader interface {
	RankedView() iter.Seq[leaderboard.Standing]
	Best(name string) (leaderboard.Score, bool)
}

type LeaderboardHandler struct {
	Board LeaderboardReader
}

func NewLeaderboardHandler(board LeaderboardReader) *LeaderboardHandler {
	return &LeaderboardHandler{Board: board}
}

// Leaderboard returns every ranked player, best first
func (h *LeaderboardHandler) Leaderboard(c *gin.Context) {
	standings := make([]leaderboard.Standing, 0)
	for st := range h.Board.RankedView() {
		standings = append(standings, st)
	}
	c.JSON(http.StatusOK, standings)
}

// Player returns one player's best score or 404 when they never won
func (h *LeaderboardHandler) Player(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	best, ok := h.Board.Best(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"name": name, "error": "no record"})
		return
	}
	c.JSON(http.StatusOK, leaderboard.Record{Name: name, Best: best})
}
