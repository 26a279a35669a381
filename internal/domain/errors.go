package domain

import "errors"

var (
	// ErrNoProfile is returned when no identity has been initialised.
	ErrNoProfile = errors.New("no identity profile; run init first")
	// ErrProfileExists is returned when init would replace an identity.
	ErrProfileExists = errors.New("identity profile already exists")
	// ErrPeerNotFound is returned for unknown peer names.
	ErrPeerNotFound = errors.New("peer not found")
)
