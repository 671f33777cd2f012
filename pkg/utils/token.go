package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenBytes is the entropy of verification and reset tokens. The encoded
// token is twice this length in hex characters.
const TokenBytes = 32

// GenerateToken returns a high-entropy opaque token. The same generator backs
// both email-verification and password-reset tokens; only the column they are
// stored in differs.
func GenerateToken() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
