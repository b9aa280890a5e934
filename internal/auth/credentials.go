package auth

import (
	"crypto/rand"
)

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// API keys are bearer secrets, so they come from crypto/rand rather than a
// seeded PRNG.
const apiKeyLen = 40

// signup hands out a random placeholder password; only its bcrypt hash is
// ever stored.
const passwordLen = 10

func NewAPIKey() (string, error) { return randomToken(apiKeyLen) }

func NewPassword() (string, error) { return randomToken(passwordLen) }

// randomToken draws n lowercase-alphanumeric characters from crypto/rand,
// rejecting bytes that would bias the distribution.
func randomToken(n int) (string, error) {
	// largest multiple of len(tokenAlphabet) that fits in a byte
	const max = 252
	out := make([]byte, 0, n)
	buf := make([]byte, 2*n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= max {
				continue
			}
			out = append(out, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
