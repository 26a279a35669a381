// Package identity manages creation and re-derivation of the local identity.
//
// It enforces passphrase policy, derives the key pair from the passphrase
// and a fresh salt, and persists only the public profile via the
// domain.ProfileStore. Loading re-derives the key and checks it against the
// stored public key.
package identity
