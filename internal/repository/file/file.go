package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/iamasit07/connect4/internal/leaderboard"
)

// DefaultPath is where the leaderboard lives when nothing else is configured.
const DefaultPath = "connect4_leaderboard.txt"

const separator = ":"

// Repo stores the leaderboard as text, one "<name>: <score>" line per player.
type Repo struct {
	Path string
}

func NewRepo(path string) *Repo {
	if path == "" {
		path = DefaultPath
	}
	return &Repo{Path: path}
}

// Load reads the file. A missing file is an empty leaderboard, not an error.
func (r *Repo) Load(ctx context.Context) ([]leaderboard.Record, error) {
	f, err := os.Open(r.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open leaderboard file: %w", err)
	}
	defer f.Close()

	records, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard file %s: %w", r.Path, err)
	}
	return records, nil
}

// Save writes the records to a temp file next to Path and renames it over
// Path, so an interrupted write never leaves a half-written leaderboard.
func (r *Repo) Save(ctx context.Context, records []leaderboard.Record) error {
	dir := filepath.Dir(r.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp leaderboard file: %w", err)
	}
	tmpName := tmp.Name()
	// removing after a successful rename is a harmless ENOENT
	defer os.Remove(tmpName)

	w := bufio.NewWriter(tmp)
	if err := Encode(w, records); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write leaderboard: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write leaderboard: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close leaderboard: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to set leaderboard permissions: %w", err)
	}
	if err := os.Rename(tmpName, r.Path); err != nil {
		return fmt.Errorf("failed to replace leaderboard file: %w", err)
	}
	return nil
}

// Decode parses leaderboard lines. Lines that have no separator, an empty
// name or a score that is not a positive number are skipped and counted.
// Lines have no length limit, so one oversized line is skipped like any
// other malformed entry.
func Decode(rd io.Reader) (records []leaderboard.Record, skipped int, err error) {
	br := bufio.NewReader(rd)
	for {
		raw, readErr := br.ReadString('\n')
		if line := strings.TrimSpace(raw); line != "" {
			rec, ok := parseLine(line)
			if ok {
				records = append(records, rec)
			} else {
				skipped++
			}
		}
		if errors.Is(readErr, io.EOF) {
			return records, skipped, nil
		}
		if readErr != nil {
			return nil, skipped, readErr
		}
	}
}

func parseLine(line string) (leaderboard.Record, bool) {
	name, score, found := strings.Cut(line, separator)
	if !found {
		return leaderboard.Record{}, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return leaderboard.Record{}, false
	}
	best, err := leaderboard.ParseScore(score)
	if err != nil {
		return leaderboard.Record{}, false
	}
	return leaderboard.Record{Name: name, Best: best}, true
}

// Encode writes one line per record in the given order.
func Encode(w io.Writer, records []leaderboard.Record) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "%s%s %s\n", rec.Name, separator, rec.Best); err != nil {
			return err
		}
	}
	return nil
}
