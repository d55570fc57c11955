// Package randid generates short random identifiers.
package randid

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random lowercase alphanumeric string of length n.
func Generate(n int) string {
	if n <= 0 {
		return ""
	}

	limit := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic("randid: crypto/rand failed: " + err.Error())
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b)
}

// Prefixed returns prefix and a random suffix of length n joined by a dash.
// An empty prefix returns the suffix alone.
func Prefixed(prefix string, n int) string {
	if prefix == "" {
		return Generate(n)
	}
	return prefix + "-" + Generate(n)
}
