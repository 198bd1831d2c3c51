package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateGameID returns a random id used to tie log lines of one game
// together. It is never persisted.
func GenerateGameID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
