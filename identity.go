package cryptem

import (
	"io"

	"cryptem/internal/crypto"
)

type (
	// PublicKey is a compressed secp256k1 public key.
	PublicKey = crypto.PublicKey
	// KDFParams are the Argon2id costs used to derive a private key.
	KDFParams = crypto.KDFParams
)

const (
	SaltSize      = crypto.SaltSize
	PublicKeySize = crypto.PublicKeySize
	SignatureSize = crypto.SignatureSize
	// Overhead is the size difference between a ciphertext and its message.
	Overhead = crypto.CiphertextOverhead
)

// DefaultKDFParams is used by New and Restore.
var DefaultKDFParams = crypto.DefaultKDFParams

// ParsePublicKey decodes a 33-byte compressed public key.
func ParsePublicKey(b []byte) (PublicKey, error) { return crypto.ParsePublicKey(b) }

// ParsePublicKeyHex decodes a hex compressed public key, with or without a
// 0x prefix.
func ParsePublicKeyHex(s string) (PublicKey, error) { return crypto.ParsePublicKeyHex(s) }

// Encrypter seals messages to a fixed recipient.
type Encrypter interface {
	Encrypt(message []byte) ([]byte, error)
	EncryptStream(dst io.Writer, src io.Reader) (int64, error)
	EncryptFile(inPath, outPath string) error
}

// Verifier checks signatures made by a fixed signer.
type Verifier interface {
	Verify(message, signature []byte) (bool, error)
}

// Decrypter opens messages sealed to its public key.
type Decrypter interface {
	Decrypt(ciphertext []byte) ([]byte, error)
	DecryptStream(dst io.Writer, src io.Reader) (int64, error)
	DecryptFile(inPath, outPath string) error
}

// Signer produces signatures over messages.
type Signer interface {
	Sign(message []byte) ([]byte, error)
}

// PublicIdentity is what anyone holding a public key can do.
type PublicIdentity interface {
	Encrypter
	Verifier
	PublicKey() PublicKey
}

// FullIdentity adds the operations that need the private key.
type FullIdentity interface {
	PublicIdentity
	Decrypter
	Signer
}

var (
	_ FullIdentity   = (*Crypt)(nil)
	_ PublicIdentity = (*Encryptor)(nil)
)
