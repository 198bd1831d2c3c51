package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	t.Setenv("LEADERBOARD_BACKEND", "file")
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestLeaderboardCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alice: 5\nBob: 4.5\ngarbage\n"), 0o644))

	out := run(t, "", "leaderboard", "--file", path, "Carol")
	assert.Contains(t, out, "1. Bob: 4.50 moves")
	assert.Contains(t, out, "2. Alice: 5 moves")
	assert.Contains(t, out, "Carol: no record yet")
}

func TestPlayCommandWritesLeaderboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.txt")
	input := strings.Join([]string{"Alice", "Bob", "0", "1", "0", "1", "0", "1", "0", "q"}, "\n") + "\n"

	out := run(t, input, "play", "--file", path)
	assert.Contains(t, out, "Alice (X) wins with a total of 4 moves!")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Alice: 4\n", string(data))
}

func TestUnreadableLeaderboardIsNotFatal(t *testing.T) {
	// a directory in place of the file cannot be read
	out := run(t, "", "leaderboard", "--file", t.TempDir())
	assert.Contains(t, out, "No wins recorded yet!")
}
