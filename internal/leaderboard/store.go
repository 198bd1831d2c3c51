package leaderboard

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Record is one player's best score.
type Record struct {
	Name string `json:"name"`
	Best Score  `json:"best"`
}

// Standing is one row of the ranked view.
type Standing struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score Score  `json:"score"`
}

// Repository is the durable side of the store. Load returns records in their
// stored order; Save replaces everything that was stored before.
type Repository interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
}

// Store keeps the in-memory mapping of player to best score and writes the
// whole mapping through its Repository after every merge.
type Store struct {
	mu      sync.RWMutex
	repo    Repository
	records []Record       // insertion order
	index   map[string]int // name -> position in records
	logger  zerolog.Logger
}

type Option func(*Store)

// WithLogger sets the logger used for load and persist warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

func New(repo Repository, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		index:  make(map[string]int),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory mapping with the repository contents. When the
// repository cannot be read the mapping is left empty and the returned error
// wraps ErrStorageUnreadable; callers are expected to carry on.
func (s *Store) Load(ctx context.Context) error {
	records, err := s.repo.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.index = make(map[string]int)
	if err != nil {
		s.logger.Warn().Err(err).Msg("leaderboard unreadable, starting empty")
		return fmt.Errorf("%w: %w", ErrStorageUnreadable, err)
	}

	skipped := 0
	for _, r := range records {
		if ValidateName(r.Name) != nil || !r.Best.Valid() {
			skipped++
			continue
		}
		s.mergeLocked(r.Name, r.Best)
	}
	s.logger.Debug().Int("records", len(s.records)).Int("skipped", skipped).Msg("leaderboard loaded")
	return nil
}

// MergeAndPersist lowers name's best score to candidate, or creates it. A
// worse or equal candidate leaves the record alone. The full mapping is
// persisted either way, in insertion order so ties rank the same after a
// reload. improved reports whether the record changed.
func (s *Store) MergeAndPersist(ctx context.Context, name string, candidate Score) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}
	if !candidate.Valid() {
		return false, ErrInvalidScore
	}

	s.mu.Lock()
	improved := s.mergeLocked(name, candidate)
	snapshot := slices.Clone(s.records)
	s.mu.Unlock()

	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.logger.Warn().Err(err).Str("player", name).Msg("failed to persist leaderboard")
		return improved, fmt.Errorf("%w: %w", ErrStorageWriteFailed, err)
	}

	s.logger.Debug().Str("player", name).Stringer("score", candidate).Bool("improved", improved).Msg("leaderboard merged")
	return improved, nil
}

func (s *Store) mergeLocked(name string, candidate Score) bool {
	i, ok := s.index[name]
	if !ok {
		s.index[name] = len(s.records)
		s.records = append(s.records, Record{Name: name, Best: candidate})
		return true
	}
	if candidate < s.records[i].Best {
		s.records[i].Best = candidate
		return true
	}
	return false
}

// rankedLocked returns a copy of the records sorted ascending by score,
// ties kept in insertion order.
func (s *Store) rankedLocked() []Record {
	out := slices.Clone(s.records)
	slices.SortStableFunc(out, func(a, b Record) int {
		switch {
		case a.Best < b.Best:
			return -1
		case a.Best > b.Best:
			return 1
		}
		return 0
	})
	return out
}

// ValidateName checks that name can be stored by every repository: not
// empty, no surrounding spaces, no ':' and no line breaks.
func ValidateName(name string) error {
	if name == "" || strings.TrimSpace(name) != name || strings.ContainsAny(name, ":\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Best returns name's recorded score. ok is false when name has never won.
func (s *Store) Best(name string) (Score, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[name]
	if !ok {
		return 0, false
	}
	return s.records[i].Best, true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// RankedView yields the standings, best first. Each iteration sorts a fresh
// snapshot, so the sequence can be ranged over again after later merges.
func (s *Store) RankedView() iter.Seq[Standing] {
	return func(yield func(Standing) bool) {
		s.mu.RLock()
		ranked := s.rankedLocked()
		s.mu.RUnlock()

		for i, r := range ranked {
			if !yield(Standing{Rank: i + 1, Name: r.Name, Score: r.Best}) {
				return
			}
		}
	}
}

// Standings collects RankedView into a slice.
func (s *Store) Standings() []Standing {
	return slices.Collect(s.RankedView())
}
