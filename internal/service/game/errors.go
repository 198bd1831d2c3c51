package game

import "github.com/iamasit07/connect4/internal/domain"

const ErrInvalidPlayer domain.Error = "invalid player name"
