package interfaces

import (
	"cryptem"
	domaintypes "cryptem/internal/domain/types"
)

// IdentityService creates and re-derives the local identity.
type IdentityService interface {
	GenerateIdentity(passphrase string, force bool) (
		*cryptem.Crypt,
		domaintypes.Fingerprint,
		error,
	)
	LoadIdentity(passphrase string) (*cryptem.Crypt, error)
	PublicKey() (cryptem.PublicKey, error)
	FingerprintIdentity() (domaintypes.Fingerprint, error)
}

// PeerService manages the address book of encrypt-only peers.
type PeerService interface {
	AddPeer(name domaintypes.PeerName, publicKey string) (domaintypes.Peer, error)
	RemovePeer(name domaintypes.PeerName) error
	ListPeers() ([]domaintypes.Peer, error)
	// Resolve accepts a peer name or a hex public key and returns an
	// Encryptor for it.
	Resolve(nameOrKey string) (*cryptem.Encryptor, error)
}
