package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	transportHttp "github.com/iamasit07/connect4/internal/transport/http"
)

func newServeCmd(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the leaderboard as JSON over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = a.cfg.Port
			}
			return a.serve(cmd.Context(), port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default from PORT)")
	return cmd
}

func (a *app) serve(ctx context.Context, port string) error {
	gin.SetMode(a.cfg.GinMode)
	logger := a.logger.With().Str("component", "http").Logger()

	handler := transportHttp.NewLeaderboardHandler(a.store)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: transportHttp.NewRouter(handler, a.cfg.AllowedOrigins, logger),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("server error")
		}
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("server is shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info().Msg("server exited gracefully")
	return nil
}
