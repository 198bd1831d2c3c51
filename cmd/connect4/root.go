package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iamasit07/connect4/internal/config"
	"github.com/iamasit07/connect4/internal/leaderboard"
	"github.com/iamasit07/connect4/internal/repository"
)

// app holds what every subcommand needs once the root has set it up.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	store  *leaderboard.Store
	close  func() error
}

type rootFlags struct {
	backend  string
	file     string
	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{close: func() error { return nil }}
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "connect4",
		Short:         "Two-player Connect Four with a best-score leaderboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context(), flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.play(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "leaderboard backend: file, sqlite, postgres or redis (default from LEADERBOARD_BACKEND)")
	root.PersistentFlags().StringVar(&flags.file, "file", "", "leaderboard file for the file backend (default from LEADERBOARD_FILE)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (default from LOG_LEVEL)")

	root.AddCommand(newPlayCmd(a), newLeaderboardCmd(a), newServeCmd(a))
	return root
}

func (a *app) setup(ctx context.Context, flags *rootFlags) error {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Debug().Err(err).Msg("could not read .env")
		}
	}

	cfg := config.LoadConfig()
	if flags.backend != "" {
		cfg.LeaderboardBackend = flags.backend
	}
	if flags.file != "" {
		cfg.LeaderboardFile = flags.file
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	a.cfg = cfg

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	repo, closeFn, err := repository.Open(ctx, cfg, a.logger)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to open leaderboard")
		return err
	}
	a.close = closeFn

	a.store = leaderboard.New(repo, leaderboard.WithLogger(a.logger.With().Str("component", "leaderboard").Logger()))
	if err := a.store.Load(ctx); err != nil {
		// unreadable storage is not fatal, the game starts with an empty board
		a.logger.Warn().Err(err).Msg("starting with an empty leaderboard")
	}
	return nil
}
