package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iamasit07/connect4/internal/service/game"
	"github.com/iamasit07/connect4/internal/transport/console"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play Connect Four in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.play(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (a *app) play(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := game.NewService(a.store, a.logger)
	return console.New(in, out, svc, a.store, a.logger).Run(ctx)
}

func newLeaderboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "leaderboard [player...]",
		Aliases: []string{"lb"},
		Short:   "Print the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			console.RenderLeaderboard(cmd.OutOrStdout(), a.store, args...)
			return nil
		},
	}
}
