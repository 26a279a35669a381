package crypto

import (
	"encoding/hex"
	"strings"
)

// ToHex returns the lower-case hex encoding of b.
func ToHex(b []byte) string { return hex.EncodeToString(b) }

// FromHex decodes s, accepting an optional 0x prefix and surrounding
// whitespace.
func FromHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return hex.DecodeString(s)
}
