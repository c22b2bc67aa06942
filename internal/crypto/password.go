// Package crypto holds the credential-derivation primitives of the
// application: bcrypt password hashing and one-time code generation.
// Nothing here keeps state; all functions are safe for concurrent use.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashMismatch is returned by ComparePassword when the supplied password
// does not match the stored hash.
var ErrHashMismatch = errors.New("password does not match stored hash")

// HashPassword derives a bcrypt hash from the plaintext password using the
// default cost. The returned string embeds the salt and cost parameters and
// is what gets persisted in the users table.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword checks the plaintext password against a stored bcrypt hash.
// Returns nil on match, ErrHashMismatch on mismatch, and a wrapped error for
// malformed hashes.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrHashMismatch
	}

	return fmt.Errorf("error comparing password hash: %w", err)
}
