package crypto

import "golang.org/x/crypto/chacha20poly1305"

const (
	// SaltSize is the size of the per-identity password salt in bytes.
	SaltSize = 16
	// ScalarSize is the size of a secp256k1 scalar in bytes.
	ScalarSize = 32
	// PublicKeySize is the size of a SEC1 compressed secp256k1 point.
	PublicKeySize = 33
	// SignatureSize is the size of an encoded R||S signature.
	SignatureSize = 64

	// KeySize is the size of the symmetric ChaCha20-Poly1305 key.
	KeySize = chacha20poly1305.KeySize
	// NonceSize is the size of a ChaCha20-Poly1305 nonce.
	NonceSize = chacha20poly1305.NonceSize
	// TagSize is the size of a Poly1305 authentication tag.
	TagSize = chacha20poly1305.Overhead

	// CiphertextOverhead is the fixed-width prefix of an encoded Ciphertext.
	CiphertextOverhead = PublicKeySize + NonceSize + TagSize

	// derivedSize is how many bytes Argon2id produces before the output is
	// reduced into the scalar field.
	derivedSize = 64
)

// HKDF info strings for domain separation.
const (
	eciesInfo = "cryptem/ecies/v1"
	// StreamInfo is the HKDF info used for stream payload keys.
	StreamInfo = "cryptem/stream/v1"
)
