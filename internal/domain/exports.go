package domain

import (
	interfaces "cryptem/internal/domain/interfaces"
	types "cryptem/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint = types.Fingerprint
	PeerName    = types.PeerName
	HexBytes    = types.HexBytes
	Profile     = types.Profile
	Peer        = types.Peer
)

// ProfileVersion is the current profile file layout.
const ProfileVersion = types.ProfileVersion

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityService = interfaces.IdentityService
	PeerService     = interfaces.PeerService
	ProfileStore    = interfaces.ProfileStore
	PeerStore       = interfaces.PeerStore
)
