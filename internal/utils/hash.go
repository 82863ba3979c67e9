// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for entry fingerprinting and JWT token inspection.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint computes the deterministic content fingerprint of an entry's
// text. Fingerprints are used purely as an equality oracle against the
// checksum ledger; they carry no security meaning.
//
// The same normalization must be applied to the text before fingerprinting
// and before comparison, otherwise a formatting difference is misreported
// as a content change. Normalization is the codec's job; this function
// hashes its input as-is.
//
// Parameters:
//
//	text - entry body to fingerprint
//
// Returns:
//
//	string - hex-encoded SHA-256 digest of text
//
// Example usage:
//
//	sum := utils.Fingerprint("Hello world\n")
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
