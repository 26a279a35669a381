package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of an encoded public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars). It is
// meant for people comparing keys, not as a key identifier.
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:10])
}
