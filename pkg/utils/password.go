package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// The login flow compares hash(supplied) against the stored hash, so the
// derivation must be deterministic: a fixed shared salt instead of a
// per-user one. Changing the salt invalidates every stored credential.
const passwordSalt = "Telemedicine_2025_SALT"

const (
	hashIterations = 65536
	hashKeyLen     = 32 // bytes -> 64 hex chars
)

// HashPassword derives a hex-encoded PBKDF2-HMAC-SHA256 hash of the plaintext.
func HashPassword(password string) string {
	key := pbkdf2.Key([]byte(password), []byte(passwordSalt), hashIterations, hashKeyLen, sha256.New)
	return hex.EncodeToString(key)
}
