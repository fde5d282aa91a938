package apikey

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// Generate produces a fresh 128-bit API key in canonical UUID form.
// Uniqueness is probabilistic; the key is never checked against a registry.
func Generate() string {
	return uuid.NewString()
}

// Hash returns the hex-encoded SHA-256 digest of the key. The digest is the
// lookup column for tenants, so it must stay deterministic.
func Hash(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
