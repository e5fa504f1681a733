package util

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// ResetTokenLength is the byte length of a password reset token
const ResetTokenLength = 32

// GenerateResetToken returns a cryptographically random token. The raw
// value is mailed to the user; only its hash is persisted.
func GenerateResetToken() (string, error) {
	bytes := make([]byte, ResetTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// HashResetToken returns the sha256 digest stored in place of the raw token
func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
