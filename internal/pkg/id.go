package pkg

import "github.com/google/uuid"

// GenerateGameID - returns a random identifier used to correlate the log records of one game.
func GenerateGameID() string {
	return uuid.NewString()
}
