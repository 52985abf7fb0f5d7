package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor applied when hashing passwords.
// bcrypt embeds a fresh random salt and this cost factor into every digest,
// so verification needs no extra stored parameters.
const PasswordHashCost = 10

// HashPassword derives a bcrypt digest from the plaintext password.
// The plaintext must be discarded by the caller immediately after hashing;
// it is never logged or persisted anywhere in the application.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword recomputes the hash over candidate using the salt and cost
// embedded in digest and compares in constant time.
//
// A plain mismatch returns (false, nil) — a wrong password is an expected
// outcome, not an error. A non-nil error is returned only for malformed
// digests or other unexpected bcrypt failures.
func VerifyPassword(digest, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(candidate))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("error verifying password: %w", err)
}
