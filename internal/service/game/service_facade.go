package game

import "github.com/rs/zerolog"

// Service is the entry point for game logic (facade). It hands the same
// Recorder to every session it starts.
type Service struct {
	Recorder Recorder
	logger   zerolog.Logger
}

func NewService(rec Recorder, logger zerolog.Logger) *Service {
	return &Service{
		Recorder: rec,
		logger:   logger,
	}
}

func (s *Service) NewSession(playerX, playerO string) (*Session, error) {
	return NewSession(playerX, playerO, s.Recorder, s.logger)
}
