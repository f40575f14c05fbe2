// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// JoinCodeLength is the fixed length of class join codes.
const JoinCodeLength = 6

// NewID returns a random UUID string used as an entity identity.
func NewID() string {
	return uuid.NewString()
}

// GenerateJoinCode creates a short human-typeable class code: the first
// six characters of a fresh UUID, uppercased. Uniqueness is enforced by
// the classes.code constraint, not checked here.
func GenerateJoinCode() string {
	return strings.ToUpper(uuid.NewString()[:JoinCodeLength])
}

// HashPassword creates a salted, irreversible bcrypt hash of a password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword verifies a password against a stored bcrypt hash.
// Returns ErrInvalidCredentials on mismatch so callers never learn
// whether the hash or the password was at fault.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
