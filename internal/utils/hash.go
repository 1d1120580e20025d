package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by ComparePassword when the password
// does not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns the bcrypt hash of password. A cost outside
// [bcrypt.MinCost, bcrypt.MaxCost] falls back to [bcrypt.DefaultCost].
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword checks password against a hash produced by HashPassword.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("error comparing password: %w", err)
	}

	return nil
}
