package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// GenerateSeed returns a cryptographically random seed for the simulation
// random source when no fixed seed is configured.
func GenerateSeed() (uint64, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return binary.LittleEndian.Uint64(b), nil
}
