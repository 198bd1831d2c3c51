package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4/internal/transport/http/middleware"
)

// NewRouter wires the read-only leaderboard API.
func NewRouter(h *LeaderboardHandler, allowedOrigins []string, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/api/leaderboard", h.Leaderboard)
	router.GET("/api/leaderboard/:name", h.Player)

	return router
}
