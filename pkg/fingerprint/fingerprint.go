// Package fingerprint turns a solution's text into a stable lookup key.
package fingerprint

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Func maps a combination's text to its fingerprint. Implementations must be deterministic and
// safe for concurrent use.
type Func func(text string) string

// MD5 returns the lowercase, zero-padded hex MD5 digest of text. Published puzzle answers are
// keyed by this digest.
func MD5(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// SHA256 returns the lowercase hex SHA-256 digest of text.
func SHA256(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// ByName returns the fingerprint function called name ("md5" or "sha256"). An empty name selects MD5.
func ByName(name string) (Func, error) {
	switch strings.ToLower(name) {
	case "", "md5":
		return MD5, nil
	case "sha256":
		return SHA256, nil
	default:
		return nil, fmt.Errorf("unknown fingerprint %q", name)
	}
}
