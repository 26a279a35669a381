package interfaces

import domaintypes "cryptem/internal/domain/types"

// ProfileStore persists the local identity's public profile.
type ProfileStore interface {
	SaveProfile(p domaintypes.Profile) error
	// LoadProfile returns domain.ErrNoProfile when nothing was saved yet.
	LoadProfile() (domaintypes.Profile, error)
}

// PeerStore persists the address book.
type PeerStore interface {
	SavePeer(p domaintypes.Peer) error
	LoadPeer(name domaintypes.PeerName) (domaintypes.Peer, bool, error)
	ListPeers() ([]domaintypes.Peer, error)
	DeletePeer(name domaintypes.PeerName) (bool, error)
}
