package app

import (
	"cryptem/internal/domain"
	"cryptem/internal/services/identity"
	"cryptem/internal/services/peer"
)

// App is what commands operate on.
type App struct {
	Config Config
	IDs    domain.IdentityService
	Peers  domain.PeerService
}

// New builds the stores and services for cfg.
func New(cfg Config) (*App, error) {
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	return &App{
		Config: cfg,
		IDs:    identity.New(w.Profiles, cfg.KDF),
		Peers:  peer.New(w.Peers),
	}, nil
}
