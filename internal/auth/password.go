package auth

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/spec-kit/patient-portal/pkg/util"
)

// HashPassword hashes a plaintext password with the configured cost. bcrypt
// embeds a fresh random salt, so two calls on the same input yield distinct
// digests that both verify.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", apperrors.NewValidationError("password must not be empty", nil)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks a plaintext password against a stored digest using
// the salt embedded in the digest. A mismatch or malformed digest yields
// (false, nil); only clearly invalid inputs produce an error.
func VerifyPassword(password, digest string) (bool, error) {
	if password == "" || digest == "" {
		return false, apperrors.NewValidationError("password and digest must not be empty", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
