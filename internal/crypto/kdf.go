package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/argon2"

	"cryptem/internal/util/memzero"
)

// KDFParams are the Argon2id cost parameters. They are part of the
// derivation input: the same password and salt only reproduce a key pair
// under the same parameters.
type KDFParams struct {
	Time      uint32 `json:"time" mapstructure:"time"`
	MemoryKiB uint32 `json:"memory_kib" mapstructure:"memory"`
	Threads   uint8  `json:"threads" mapstructure:"threads"`
}

// DefaultKDFParams follows the RFC 9106 second recommended option with a
// 64 MiB memory cost.
var DefaultKDFParams = KDFParams{Time: 3, MemoryKiB: 64 * 1024, Threads: 4}

// Validate reports whether p can be passed to Argon2id.
func (p KDFParams) Validate() error {
	switch {
	case p.Time == 0:
		return fmt.Errorf("%w: argon2 time cost must be positive", ErrDerivation)
	case p.Threads == 0:
		return fmt.Errorf("%w: argon2 threads must be positive", ErrDerivation)
	case p.MemoryKiB < 8*uint32(p.Threads):
		return fmt.Errorf("%w: argon2 memory must be at least %d KiB", ErrDerivation, 8*uint32(p.Threads))
	}
	return nil
}

// NewSalt returns SaltSize fresh random bytes.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveScalar turns password and salt into a secp256k1 private scalar.
//
// Argon2id yields 512 bits v which are mapped to k = (v mod (N-1)) + 1, so
// k is always in [1, N-1]. With v twice the width of N the distribution is
// within 2^-256 of uniform. The result is a pure function of its inputs.
func DeriveScalar(password, salt []byte, params KDFParams) (*big.Int, error) {
	if len(password) == 0 {
		return nil, fmt.Errorf("%w: empty password", ErrDerivation)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes, want %d", ErrDerivation, len(salt), SaltSize)
	}
	if allZero(salt) {
		return nil, fmt.Errorf("%w: salt is not random", ErrDerivation)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := argon2.IDKey(password, salt, params.Time, params.MemoryKiB, params.Threads, derivedSize)
	defer memzero.Zero(out)

	v := new(big.Int).SetBytes(out)
	k := new(big.Int).Mod(v, nMinusOne)
	k.Add(k, bigOne)
	memzero.Int(v)
	return k, nil
}

// DeriveKeyPair derives the scalar for password and salt and builds the
// matching key pair.
func DeriveKeyPair(password, salt []byte, params KDFParams) (*KeyPair, error) {
	k, err := DeriveScalar(password, salt, params)
	if err != nil {
		return nil, err
	}
	defer memzero.Int(k)
	return NewKeyPair(k)
}

func allZero(b []byte) bool {
	var v byte
	for _, c := range b {
		v |= c
	}
	return v == 0
}
