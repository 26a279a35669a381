package crypto

import "errors"

var (
	// ErrDerivation is returned when a password, salt or cost parameter is
	// unusable for key derivation.
	ErrDerivation = errors.New("key derivation failed")

	// ErrInvalidKey is returned when a public key has the wrong length or
	// does not decode to a point on secp256k1.
	ErrInvalidKey = errors.New("invalid key")

	// ErrMalformedInput is returned when a ciphertext or signature encoding
	// is structurally invalid.
	ErrMalformedInput = errors.New("malformed input")

	// ErrAuthentication is returned when an authentication tag does not
	// match. No plaintext is ever returned alongside it.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNoPrivateKey is returned when an operation needs the private scalar
	// and the key pair does not hold one.
	ErrNoPrivateKey = errors.New("no private key available")
)
