package pkg

import "github.com/google/uuid"

// GenerateNewSessionID returns the id that binds a browser to its persisted session.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateMatchID returns a unique id for a single match.
func GenerateMatchID() string {
	return uuid.NewString()
}

// IsValidSessionID reports whether id looks like one produced by GenerateNewSessionID.
func IsValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
