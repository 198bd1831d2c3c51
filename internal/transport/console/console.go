package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/leaderboard"
	"github.com/iamasit07/connect4/internal/service/game"
)

// ErrInputClosed is returned when the input ends in the middle of a prompt.
const ErrInputClosed domain.Error = "input closed"

// Names used when a player just presses enter.
const (
	DefaultPlayerX = "Player X"
	DefaultPlayerO = "Player O"
)

// Console plays games over a line-based reader and writer.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	service *game.Service
	lb      Leaderboard
	logger  zerolog.Logger
}

func New(in io.Reader, out io.Writer, svc *game.Service, lb Leaderboard, logger zerolog.Logger) *Console {
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		service: svc,
		lb:      lb,
		logger:  logger.With().Str("component", "console").Logger(),
	}
}

// Run shows the current leaderboard, asks for the two names and keeps
// playing until the player quits or the input ends. An empty name falls
// back to the default for that piece.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome to Connect 4!")
	RenderLeaderboard(c.out, c.lb)
	fmt.Fprintln(c.out)

	playerX, err := c.askName("Enter name for Player X", DefaultPlayerX)
	if err != nil {
		return quietEOF(err)
	}
	playerO, err := c.askName("Enter name for Player O", DefaultPlayerO)
	if err != nil {
		return quietEOF(err)
	}

	for {
		if _, err := c.PlayGame(ctx, playerX, playerO); err != nil {
			return quietEOF(err)
		}

	menu:
		for {
			choice, err := c.prompt("\n[r]eplay, [l]eaderboard or [q]uit? ")
			if err != nil {
				return quietEOF(err)
			}
			switch strings.ToLower(choice) {
			case "r", "replay":
				break menu
			case "l", "leaderboard":
				RenderLeaderboard(c.out, c.lb, playerX, playerO)
			case "q", "quit":
				fmt.Fprintln(c.out, "Thanks for playing! Goodbye.")
				return nil
			default:
				fmt.Fprintln(c.out, "Please answer r, l or q.")
			}
		}
	}
}

// PlayGame runs one game to its end and returns the result.
func (c *Console) PlayGame(ctx context.Context, playerX, playerO string) (*game.Result, error) {
	session, err := c.service.NewSession(playerX, playerO)
	if err != nil {
		return nil, err
	}

	RenderBoard(c.out, session.Board())
	for !session.Finished() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		piece := session.Current()
		answer, err := c.prompt(fmt.Sprintf("%s (%s), choose a column (0-%d): ", session.CurrentPlayer(), piece, domain.Columns-1))
		if err != nil {
			return nil, err
		}

		column, err := strconv.Atoi(answer)
		if err != nil {
			c.logger.Debug().Str("input", answer).Msg("rejected non-numeric column")
			fmt.Fprintln(c.out, "Invalid input. Enter a number.")
			continue
		}

		res, err := session.Move(ctx, column)
		switch {
		case errors.Is(err, domain.ErrInvalidColumn):
			fmt.Fprintln(c.out, "Invalid column. Try again.")
			continue
		case errors.Is(err, domain.ErrColumnFull):
			fmt.Fprintln(c.out, "Column full. Try a different one.")
			continue
		case errors.Is(err, leaderboard.ErrStorageWriteFailed):
			fmt.Fprintf(c.out, "Warning: the leaderboard could not be saved (%v)\n", err)
		case err != nil:
			return nil, err
		}

		RenderBoard(c.out, session.Board())
		if res.Result != nil {
			c.announce(*res.Result, res.Improved)
		}
	}
	return session.Result(), nil
}

func (c *Console) announce(r game.Result, improved bool) {
	if r.Draw {
		fmt.Fprintln(c.out, "It's a draw!")
		return
	}
	fmt.Fprintf(c.out, "\n%s (%s) wins with a total of %d moves!\n", r.WinnerName, r.Winner, r.MovesToWin)
	if improved {
		fmt.Fprintf(c.out, "Leaderboard updated: %s set a new record with %d moves!\n", r.WinnerName, r.MovesToWin)
	}
}

func (c *Console) askName(label, fallback string) (string, error) {
	for {
		name, err := c.prompt(fmt.Sprintf("%s [%s]: ", label, fallback))
		if err != nil {
			return "", err
		}
		if name == "" {
			return fallback, nil
		}
		if err := leaderboard.ValidateName(name); err != nil {
			fmt.Fprintln(c.out, "Names must not contain ':'.")
			continue
		}
		return name, nil
	}
}

// prompt prints label and returns the next trimmed input line.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func quietEOF(err error) error {
	if errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}
