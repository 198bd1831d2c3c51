package console

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/leaderboard"
)

// Leaderboard is the read side of the leaderboard store.
type Leaderboard interface {
	RankedView() iter.Seq[leaderboard.Standing]
	Best(name string) (leaderboard.Score, bool)
}

// RenderBoard prints the top row first so the board looks the way it stands,
// with the column numbers underneath.
func RenderBoard(w io.Writer, b *domain.Board) {
	cells := make([]string, domain.Columns)
	for row := domain.Rows - 1; row >= 0; row-- {
		for col := 0; col < domain.Columns; col++ {
			cells[col] = b.Cell(row, col).String()
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
	for col := 0; col < domain.Columns; col++ {
		cells[col] = strconv.Itoa(col)
	}
	fmt.Fprintln(w, strings.Join(cells, " "))
}

// RenderLeaderboard prints the ranked view followed by a "no record" line
// for each of players that has never won.
func RenderLeaderboard(w io.Writer, lb Leaderboard, players ...string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🏆 Leaderboard (Least Moves to Win)")
	fmt.Fprintln(w, "____________________________________")

	n := 0
	for st := range lb.RankedView() {
		fmt.Fprintf(w, "%d. %s: %s moves\n", st.Rank, st.Name, st.Score)
		n++
	}
	if n == 0 {
		fmt.Fprintln(w, "No wins recorded yet!")
	}

	seen := map[string]bool{}
	for _, name := range players {
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := lb.Best(name); !ok {
			fmt.Fprintf(w, "%s: no record yet\n", name)
		}
	}
}
