package types

import "cryptem/internal/crypto"

// ProfileVersion is the current profile file layout.
const ProfileVersion = 1

// Profile is the public material needed to re-derive the local identity
// from its passphrase. It never holds private key material.
type Profile struct {
	Version   int              `json:"version"`
	Salt      HexBytes         `json:"salt"`
	KDF       crypto.KDFParams `json:"kdf"`
	PublicKey HexBytes         `json:"public_key"`
}

// Peer is an address-book entry mapping a name to a public key.
type Peer struct {
	Name      PeerName `json:"name"`
	PublicKey HexBytes `json:"public_key"`
}
