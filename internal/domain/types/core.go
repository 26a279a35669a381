package types

import (
	"encoding/hex"
	"strings"
)

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// PeerName is the local alias of an address-book entry.
type PeerName string

// String returns the string form of the peer name.
func (n PeerName) String() string { return string(n) }

// HexBytes is a byte slice that is stored as a hex string.
type HexBytes []byte

// MarshalText encodes b as lower-case hex.
func (b HexBytes) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(out, b)
	return out, nil
}

// UnmarshalText decodes hex, accepting an optional 0x prefix.
func (b *HexBytes) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "0x")
	out, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	*b = out
	return nil
}

// String returns the hex form of b.
func (b HexBytes) String() string { return hex.EncodeToString(b) }
