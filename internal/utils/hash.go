package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor applied to every password
// digest. Raising it invalidates no existing digests - bcrypt embeds the
// cost in the digest itself - but slows down new registrations.
const PasswordHashCost = 12

// ErrHashingFailed is returned when the bcrypt primitive itself fails
// (malformed input, corrupted digest). A plain password mismatch is NOT
// an error: VerifyPassword reports it via the boolean result.
var ErrHashingFailed = errors.New("password hashing failed")

// HashPassword derives a salted bcrypt digest from the given plaintext
// password using [PasswordHashCost].
//
// The returned digest embeds the salt and cost, so no additional state
// is needed to verify it later.
//
// Returns [ErrHashingFailed] (wrapped) if the input cannot be hashed,
// e.g. the plaintext exceeds bcrypt's 72-byte limit.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return string(digest), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt
// digest in constant time.
//
// Returns:
//   - (true, nil) when the password matches the digest
//   - (false, nil) when the password does not match
//   - (false, ErrHashingFailed) when the digest is malformed or the
//     comparison fails for an internal reason
func VerifyPassword(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("%w: %w", ErrHashingFailed, err)
}
