package cryptem

import (
	"fmt"
	"io"

	"cryptem/internal/crypto"
	"cryptem/internal/stream"
)

// Encryptor is the public half of a Crypt. It encrypts to, and verifies
// signatures from, a single public key.
type Encryptor struct {
	pub PublicKey
}

// NewEncryptor returns an Encryptor for pub.
func NewEncryptor(pub PublicKey) (*Encryptor, error) {
	if pub.IsZero() {
		return nil, fmt.Errorf("%w: empty public key", ErrInvalidKey)
	}
	return &Encryptor{pub: pub}, nil
}

// ParseEncryptor returns an Encryptor for the compressed public key b, as
// produced by PublicKey().Bytes().
func ParseEncryptor(b []byte) (*Encryptor, error) {
	pub, err := crypto.ParsePublicKey(b)
	if err != nil {
		return nil, err
	}
	return &Encryptor{pub: pub}, nil
}

func (e *Encryptor) PublicKey() PublicKey { return e.pub }

// Encrypt seals message so that only the holder of the private key can
// read it. Every call uses a fresh ephemeral key.
func (e *Encryptor) Encrypt(message []byte) ([]byte, error) {
	return seal(message, e.pub)
}

// Verify reports whether signature is a valid signature of message by the
// key's owner. A well-formed signature that does not match returns false
// and no error.
func (e *Encryptor) Verify(message, signature []byte) (bool, error) {
	return crypto.Verify(message, signature, e.pub)
}

// EncryptStream encrypts src to dst in chunks. It returns the number of
// bytes written to dst.
func (e *Encryptor) EncryptStream(dst io.Writer, src io.Reader) (int64, error) {
	return stream.Encrypt(dst, src, e.pub)
}

// EncryptFile encrypts the file at inPath into outPath.
func (e *Encryptor) EncryptFile(inPath, outPath string) error {
	return transformFile(inPath, outPath, e.EncryptStream)
}

func seal(message []byte, to PublicKey) ([]byte, error) {
	ct, err := crypto.Encrypt(message, to)
	if err != nil {
		return nil, err
	}
	return ct.MarshalBinary()
}
