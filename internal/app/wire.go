package app

import (
	"os"

	"cryptem/internal/domain"
	"cryptem/internal/store"
)

// Wire bundles the file stores for the CLI.
type Wire struct {
	Profiles domain.ProfileStore
	Peers    domain.PeerStore
}

// NewWire creates cfg.Home if needed and constructs the stores under it.
func NewWire(cfg Config) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	return &Wire{
		Profiles: store.NewProfileFileStore(cfg.Home),
		Peers:    store.NewPeerFileStore(cfg.Home),
	}, nil
}
