package crypto

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"fmt"
	"io"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/hkdf"

	"cryptem/internal/util/memzero"
)

// dh computes the x coordinate of priv·pub on secp256k1.
func dh(priv *ecdsa.PrivateKey, pub PublicKey) ([]byte, error) {
	if pub.IsZero() {
		return nil, fmt.Errorf("%w: missing point", ErrInvalidKey)
	}
	d := make([]byte, ScalarSize)
	priv.D.FillBytes(d)
	defer memzero.Zero(d)

	x, y := ethcrypto.S256().ScalarMult(pub.pub.X, pub.pub.Y, d)
	if x == nil || (x.Sign() == 0 && y.Sign() == 0) {
		return nil, fmt.Errorf("%w: shared point at infinity", ErrInvalidKey)
	}
	out := make([]byte, ScalarSize)
	x.FillBytes(out)
	return out, nil
}

// EncapsulateKey generates a fresh ephemeral key pair, agrees on a secret
// with recipient and derives a KeySize symmetric key from it. The ephemeral
// public key must travel with the ciphertext. Callers own the returned key
// and should wipe it.
func EncapsulateKey(recipient PublicKey, info string) (ephemeral PublicKey, key []byte, err error) {
	if recipient.IsZero() {
		return PublicKey{}, nil, fmt.Errorf("%w: missing recipient", ErrInvalidKey)
	}
	eph, err := GenerateKeyPair()
	if err != nil {
		return PublicKey{}, nil, err
	}
	secret, err := dh(eph.priv, recipient)
	if err != nil {
		return PublicKey{}, nil, err
	}
	defer memzero.Zero(secret)

	key, err = deriveKey(secret, eph.pub, recipient, info)
	if err != nil {
		return PublicKey{}, nil, err
	}
	return eph.pub, key, nil
}

// DecapsulateKey recomputes the key EncapsulateKey produced for kp's public
// key and the given ephemeral point.
func DecapsulateKey(kp *KeyPair, ephemeral PublicKey, info string) ([]byte, error) {
	priv, err := kp.private()
	if err != nil {
		return nil, err
	}
	secret, err := dh(priv, ephemeral)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(secret)
	return deriveKey(secret, ephemeral, kp.pub, info)
}

// deriveKey runs HKDF-SHA256 over the shared secret, salted with both
// public keys so the key is bound to this sender/recipient pair.
func deriveKey(secret []byte, ephemeral, recipient PublicKey, info string) ([]byte, error) {
	salt := make([]byte, 0, 2*PublicKeySize)
	salt = append(salt, ephemeral.raw[:]...)
	salt = append(salt, recipient.raw[:]...)

	r := hkdf.New(sha256.New, secret, salt, []byte(info))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}
