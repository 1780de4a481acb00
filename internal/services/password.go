package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password hashing modes.
const (
	HashingPlaintext = "plaintext"
	HashingBCrypt    = "bcrypt"
)

// PasswordHasher turns a password into its stored form and checks candidates against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(stored, password string) bool
}

// PlaintextHasher stores passwords as given. Demo only: anyone who can read
// the store can read every password.
type PlaintextHasher struct{}

// Hash returns password unchanged.
func (PlaintextHasher) Hash(password string) (string, error) { return password, nil }

// Compare reports exact equality.
func (PlaintextHasher) Compare(stored, password string) bool { return stored == password }

// BCryptHasher stores bcrypt hashes.
type BCryptHasher struct {
	Cost int
}

// Hash returns the bcrypt hash of password.
func (h BCryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare checks password against a stored bcrypt hash.
func (BCryptHasher) Compare(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// NewPasswordHasher returns the hasher for a hashing mode.
func NewPasswordHasher(mode string) (PasswordHasher, error) {
	switch mode {
	case "", HashingPlaintext:
		return PlaintextHasher{}, nil
	case HashingBCrypt:
		return BCryptHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password hashing mode %q", mode)
	}
}
