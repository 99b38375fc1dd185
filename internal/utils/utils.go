// Package utils provides utility functions used throughout the auth core.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
)

// GetEnv retrieves the value of the environment variable named by key.
// If the value is not set in the environment, it returns the provided default value.
//
// Parameters:
//   - key: The name of the environment variable to retrieve
//   - d_val: The default value to return if the environment variable is not set
//
// Returns:
//   - The value of the environment variable, or the default value if not set
func GetEnv(key, d_val string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return d_val
}

// Sha256 computes the SHA256 hash of a given string and returns its hexadecimal representation.
func Sha256(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}
