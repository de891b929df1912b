package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const minAdminPasswordLength = 12

// ErrAdminPasswordTooShort is returned when a new admin password is under the minimum length.
var ErrAdminPasswordTooShort = errors.New("admin password must be at least 12 characters")

// HashAdminPassword produces the bcrypt value stored in ADMIN_PASSWORD_HASH.
func HashAdminPassword(password string) (string, error) {
	if len(password) < minAdminPasswordLength {
		return "", ErrAdminPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// AdminPasswordMatches reports whether password matches the configured hash.
// An empty or malformed hash never matches.
func AdminPasswordMatches(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
