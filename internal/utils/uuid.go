package utils

import "github.com/google/uuid"

// NewID returns a new time-ordered UUID string, falling back to a random
// UUIDv4 if the v7 source fails. Used for user and session identifiers.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
