package crypto

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"cryptem/internal/util/memzero"
)

var (
	curveN    = ethcrypto.S256().Params().N
	bigOne    = big.NewInt(1)
	nMinusOne = new(big.Int).Sub(curveN, bigOne)
)

// PublicKey is a secp256k1 point. The zero value is not a valid key.
type PublicKey struct {
	raw [PublicKeySize]byte
	pub *ecdsa.PublicKey
}

// ParsePublicKey decodes a SEC1 compressed point and checks that it lies on
// the curve.
func ParsePublicKey(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return PublicKey{}, fmt.Errorf("%w: public key is %d bytes, want %d", ErrInvalidKey, len(b), PublicKeySize)
	}
	pub, err := ethcrypto.DecompressPubkey(b)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return newPublicKey(pub)
}

// ParsePublicKeyHex decodes a hex (optionally 0x-prefixed) public key.
func ParsePublicKeyHex(s string) (PublicKey, error) {
	b, err := FromHex(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return ParsePublicKey(b)
}

func newPublicKey(pub *ecdsa.PublicKey) (PublicKey, error) {
	if pub == nil || pub.X == nil || pub.Y == nil {
		return PublicKey{}, fmt.Errorf("%w: missing point", ErrInvalidKey)
	}
	if pub.X.Sign() == 0 && pub.Y.Sign() == 0 {
		return PublicKey{}, fmt.Errorf("%w: point at infinity", ErrInvalidKey)
	}
	if !ethcrypto.S256().IsOnCurve(pub.X, pub.Y) {
		return PublicKey{}, fmt.Errorf("%w: point is not on secp256k1", ErrInvalidKey)
	}
	k := PublicKey{pub: pub}
	copy(k.raw[:], ethcrypto.CompressPubkey(pub))
	return k, nil
}

// Bytes returns the 33-byte compressed encoding.
func (k PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, k.raw[:])
	return out
}

// String returns the hex encoding of Bytes.
func (k PublicKey) String() string { return hex.EncodeToString(k.raw[:]) }

// Fingerprint returns a short identifier for display.
func (k PublicKey) Fingerprint() string { return Fingerprint(k.raw[:]) }

// Equal reports whether k and o encode the same point.
func (k PublicKey) Equal(o PublicKey) bool { return k.raw == o.raw }

// IsZero reports whether k is the zero value.
func (k PublicKey) IsZero() bool { return k.pub == nil }

// KeyPair holds a private scalar and its public point. It is immutable
// after construction.
type KeyPair struct {
	priv *ecdsa.PrivateKey
	pub  PublicKey
}

// NewKeyPair computes scalar·G and returns the pair. scalar must be in
// [1, N-1]; it is copied, so the caller may wipe it afterwards.
func NewKeyPair(scalar *big.Int) (*KeyPair, error) {
	if scalar == nil || scalar.Sign() <= 0 || scalar.Cmp(curveN) >= 0 {
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidKey)
	}
	d := make([]byte, ScalarSize)
	scalar.FillBytes(d)
	defer memzero.Zero(d)

	priv, err := ethcrypto.ToECDSA(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return fromECDSA(priv)
}

// GenerateKeyPair returns a key pair with a fresh random scalar.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return fromECDSA(priv)
}

func fromECDSA(priv *ecdsa.PrivateKey) (*KeyPair, error) {
	pub, err := newPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, err
	}
	return &KeyPair{priv: priv, pub: pub}, nil
}

// Public returns the public half. It never discloses the scalar.
func (kp *KeyPair) Public() PublicKey { return kp.pub }

func (kp *KeyPair) private() (*ecdsa.PrivateKey, error) {
	if kp == nil || kp.priv == nil || kp.priv.D == nil {
		return nil, ErrNoPrivateKey
	}
	return kp.priv, nil
}
