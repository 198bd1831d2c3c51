package leaderboard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		in   string
		want Score
		ok   bool
	}{
		{"5", 5, true},
		{" 4.5 ", 4.5, true},
		{"4.50", 4.5, true},
		{"12.0", 12, true},
		{"inf", 0, false},
		{"+Inf", 0, false},
		{"NaN", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
		{"five", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseScore(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "5", Score(5).String())
	assert.Equal(t, "4.50", Score(4.5).String())
	assert.Equal(t, "3.33", Score(10.0/3).String())
	assert.Equal(t, "21", Score(21).String())
}

func TestScoreJSON(t *testing.T) {
	b, err := json.Marshal(Standing{Rank: 1, Name: "Bob", Score: 4.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rank":1,"name":"Bob","score":4.5}`, string(b))
}
