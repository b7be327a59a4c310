package authutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateToken returns a random hex token of the given length.
// Each byte encodes as two hex digits, so odd lengths round down.
func GenerateToken(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("authutil: token length must be positive, got %d", length)
	}
	buf := make([]byte, length/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("authutil: read random: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
