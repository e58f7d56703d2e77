// Package password provides one-way hashing and verification of plaintext
// passwords using bcrypt.
package password

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DummyHash is a valid bcrypt hash of a throwaway value. Callers compare
// against it when no real hash is available so that verification cost stays
// constant whether or not the user exists (timing-attack mitigation).
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// digest pre-hashes the plaintext with SHA-256 so inputs of any length fit
// within bcrypt's 72-byte limit. The sum is base64-encoded because the raw
// digest may contain NUL bytes.
func digest(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	return []byte(base64.RawStdEncoding.EncodeToString(sum[:]))
}

// Hash returns the salted bcrypt hash of a plaintext password.
// The salt is generated internally, so hashing the same input twice
// yields different hashes. Input length is unbounded.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(digest(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plain is the password that produced hash.
// A malformed stored hash yields false, never an error.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), digest(plain)) == nil
}
