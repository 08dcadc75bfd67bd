package auth

import (
	"errors"

	"github.com/yigit/educa/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor for stored user passwords
var hashCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash stored in users.password.
// Passwords longer than bcrypt's 72 byte limit are rejected rather than truncated.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperrors.NewValidationError("password", "password must be at most 72 bytes")
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
