package authcode

import (
	"crypto/rand"
	"fmt"
)

// maxMultiple is the largest multiple of len(codeAlphabet) that fits in a
// byte; bytes landing above it are rejected so every symbol keeps an exactly
// uniform 1/36 chance instead of being biased toward the low remainder.
const maxMultiple = 252 // 7 * 36

// generateCode draws CodeLength symbols uniformly from codeAlphabet using a
// cryptographically-appropriate random source.
func generateCode() (string, error) {
	out := make([]byte, CodeLength)
	buf := make([]byte, 1)

	for i := 0; i < CodeLength; {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random byte: %w", err)
		}
		if buf[0] >= maxMultiple {
			continue
		}
		out[i] = codeAlphabet[int(buf[0])%len(codeAlphabet)]
		i++
	}

	return string(out), nil
}
