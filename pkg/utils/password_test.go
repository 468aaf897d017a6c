package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordDeterministic(t *testing.T) {
	h1 := HashPassword("secret123")
	h2 := HashPassword("secret123")
	assert.Equal(t, h1, h2, "same plaintext must always derive the same hash")
}

func TestHashPasswordShape(t *testing.T) {
	h := HashPassword("secret123")
	assert.Len(t, h, 64)
	_, err := hex.DecodeString(h)
	assert.NoError(t, err, "hash must be hex-encoded")
}

func TestHashPasswordDiffersPerPlaintext(t *testing.T) {
	assert.NotEqual(t, HashPassword("secret123"), HashPassword("secret124"))
	assert.NotEqual(t, HashPassword(""), HashPassword("a"))
}
