package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// TokenBytes is the entropy of a session token. 256 bits makes collisions
// negligible, so token generation never retries on insert.
const TokenBytes = 32

// GenerateSessionToken returns a 64-char hex token.
func GenerateSessionToken() (string, error) {
	b := make([]byte, TokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
