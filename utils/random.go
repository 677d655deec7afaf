package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomToken returns n random bytes hex-encoded (2n chars).
// Used for password-reset tokens and unusable guest passwords.
func RandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
