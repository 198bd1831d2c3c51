package leaderboard

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrStorageUnreadable  Error = "leaderboard storage unreadable"
	ErrStorageWriteFailed Error = "leaderboard storage write failed"
	ErrInvalidScore       Error = "score must be a positive finite number"
	ErrInvalidName        Error = "invalid player name"
)
