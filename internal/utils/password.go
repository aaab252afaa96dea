package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashOperatorKey hashes a plaintext operator key using bcrypt.
func HashOperatorKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckOperatorKey compares a plaintext operator key with its bcrypt hash.
// An empty hash never matches.
func CheckOperatorKey(key, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
