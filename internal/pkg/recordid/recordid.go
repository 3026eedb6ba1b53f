package recordid

import (
	"crypto/rand"
	"fmt"
	"time"
)

// Alphabet for the random suffix (36 characters: 0-9, A-Z)
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// SuffixLength is the number of random characters after the date prefix.
const SuffixLength = 3

// New generates a payment record identifier of the form YYYYMMDD-XXX,
// where XXX is a random uppercase alphanumeric suffix.
func New(t time.Time) (string, error) {
	suffix, err := randomSuffix(SuffixLength)
	if err != nil {
		return "", err
	}
	return t.Format("20060102") + "-" + suffix, nil
}

// randomSuffix creates a cryptographically secure random string over the
// alphabet using rejection sampling to avoid modulo bias.
// 252 is the largest multiple of 36 below 256.
func randomSuffix(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid suffix length: %d", length)
	}

	const maxRandomByte = 252

	suffix := make([]byte, length)
	buf := make([]byte, length*2)
	written := 0

	for written < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read secure random bytes: %w", err)
		}

		for _, b := range buf {
			if b >= maxRandomByte {
				continue
			}
			suffix[written] = alphabet[int(b)%len(alphabet)]
			written++
			if written == length {
				break
			}
		}
	}

	return string(suffix), nil
}
