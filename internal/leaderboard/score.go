package leaderboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fractionDigits is the fixed precision used for non-whole scores.
const fractionDigits = 2

// Score is a best "moves to win" value. Lower is better. A record without a
// score does not exist, so there is no infinity placeholder.
type Score float64

// ParseScore reads a score as written in the durable format. It rejects
// anything that is not a positive finite number, including "inf" and "nan".
func ParseScore(s string) (Score, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse score %q: %w", s, err)
	}
	sc := Score(v)
	if !sc.Valid() {
		return 0, fmt.Errorf("parse score %q: %w", s, ErrInvalidScore)
	}
	return sc, nil
}

func (s Score) Valid() bool {
	v := float64(s)
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// IsWhole reports whether s has no fractional part.
func (s Score) IsWhole() bool {
	return float64(s) == math.Trunc(float64(s))
}

// String formats whole scores without a fraction and the rest with a fixed
// number of fractional digits.
func (s Score) String() string {
	if s.IsWhole() {
		return strconv.FormatFloat(float64(s), 'f', 0, 64)
	}
	return strconv.FormatFloat(float64(s), 'f', fractionDigits, 64)
}

// MarshalJSON emits the score as a JSON number in its display format.
func (s Score) MarshalJSON() ([]byte, error) {
	return []byte(s.String()), nil
}
