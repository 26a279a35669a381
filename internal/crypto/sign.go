package crypto

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Sign returns a 64-byte R||S ECDSA signature over SHA-256(message).
//
// The nonce is derived deterministically per RFC 6979, so signing the same
// message twice yields the same signature and no two messages share a
// nonce. S is always in the lower half of the group order.
func Sign(message []byte, kp *KeyPair) ([]byte, error) {
	priv, err := kp.private()
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(message)
	sig, err := ethcrypto.Sign(digest[:], priv)
	if err != nil {
		return nil, err
	}
	// Drop the recovery id.
	return sig[:SignatureSize], nil
}

// Verify checks sig over message against pub.
//
// A signature that does not match is reported as false with a nil error.
// ErrMalformedInput is only returned when sig is not 64 bytes or R or S
// lies outside [1, N-1].
func Verify(message, sig []byte, pub PublicKey) (bool, error) {
	if err := checkSignature(sig); err != nil {
		return false, err
	}
	if pub.IsZero() {
		return false, fmt.Errorf("%w: missing public key", ErrInvalidKey)
	}
	digest := sha256.Sum256(message)
	return ethcrypto.VerifySignature(pub.raw[:], digest[:], sig), nil
}

func checkSignature(sig []byte) error {
	if len(sig) != SignatureSize {
		return fmt.Errorf("%w: signature is %d bytes, want %d", ErrMalformedInput, len(sig), SignatureSize)
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	if r.Sign() == 0 || r.Cmp(curveN) >= 0 {
		return fmt.Errorf("%w: signature R out of range", ErrMalformedInput)
	}
	if s.Sign() == 0 || s.Cmp(curveN) >= 0 {
		return fmt.Errorf("%w: signature S out of range", ErrMalformedInput)
	}
	return nil
}
