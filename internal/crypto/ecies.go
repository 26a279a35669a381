package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"cryptem/internal/util/memzero"
)

// Ciphertext is the output of Encrypt. It is self-contained: the recipient's
// key pair is all Decrypt needs besides it.
type Ciphertext struct {
	Ephemeral [PublicKeySize]byte
	Nonce     [NonceSize]byte
	Tag       [TagSize]byte
	Payload   []byte
}

// MarshalBinary encodes c as ephemeral || nonce || tag || payload.
func (c Ciphertext) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, CiphertextOverhead+len(c.Payload))
	out = append(out, c.Ephemeral[:]...)
	out = append(out, c.Nonce[:]...)
	out = append(out, c.Tag[:]...)
	out = append(out, c.Payload...)
	return out, nil
}

// UnmarshalBinary is the inverse of MarshalBinary. The payload is copied.
func (c *Ciphertext) UnmarshalBinary(b []byte) error {
	if len(b) < CiphertextOverhead {
		return fmt.Errorf("%w: ciphertext is %d bytes, need at least %d", ErrMalformedInput, len(b), CiphertextOverhead)
	}
	off := copy(c.Ephemeral[:], b)
	off += copy(c.Nonce[:], b[off:])
	off += copy(c.Tag[:], b[off:])
	c.Payload = append([]byte(nil), b[off:]...)
	return nil
}

// ParseCiphertext decodes the wire format produced by MarshalBinary.
func ParseCiphertext(b []byte) (Ciphertext, error) {
	var c Ciphertext
	err := c.UnmarshalBinary(b)
	return c, err
}

// additionalData binds the framing fields into the tag.
func (c *Ciphertext) additionalData() []byte {
	ad := make([]byte, 0, PublicKeySize+NonceSize)
	ad = append(ad, c.Ephemeral[:]...)
	return append(ad, c.Nonce[:]...)
}

// Encrypt seals message to recipient. Every call uses a fresh ephemeral
// scalar and a fresh random nonce.
func Encrypt(message []byte, recipient PublicKey) (Ciphertext, error) {
	eph, key, err := EncapsulateKey(recipient, eciesInfo)
	if err != nil {
		return Ciphertext{}, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return Ciphertext{}, err
	}

	var c Ciphertext
	copy(c.Ephemeral[:], eph.raw[:])
	if _, err := io.ReadFull(rand.Reader, c.Nonce[:]); err != nil {
		return Ciphertext{}, err
	}
	sealed := aead.Seal(nil, c.Nonce[:], message, c.additionalData())
	n := len(sealed) - TagSize
	copy(c.Tag[:], sealed[n:])
	c.Payload = sealed[:n]
	return c, nil
}

// Decrypt opens c with kp's private scalar.
//
// A tag mismatch yields ErrAuthentication. An embedded ephemeral point that
// is not on the curve yields an error matching both ErrAuthentication and
// ErrInvalidKey, since it can only come from a corrupted ciphertext.
func Decrypt(c Ciphertext, kp *KeyPair) ([]byte, error) {
	if _, err := kp.private(); err != nil {
		return nil, err
	}
	eph, err := ParsePublicKey(c.Ephemeral[:])
	if err != nil {
		return nil, fmt.Errorf("%w: ephemeral key: %w", ErrAuthentication, err)
	}
	key, err := DecapsulateKey(kp, eph, eciesInfo)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	sealed := make([]byte, 0, len(c.Payload)+TagSize)
	sealed = append(sealed, c.Payload...)
	sealed = append(sealed, c.Tag[:]...)

	plaintext, err := aead.Open(nil, c.Nonce[:], sealed, c.additionalData())
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}
