// Package crypto exposes the primitives used by cryptem.
//
// Contents
//
//   - Password-based key derivation: Argon2id output reduced into the
//     secp256k1 scalar field (DeriveScalar, DeriveKeyPair, NewSalt)
//   - secp256k1 key pairs and compressed public keys (KeyPair, PublicKey,
//     ParsePublicKey)
//   - ECIES-style hybrid encryption: ephemeral ECDH, HKDF-SHA256 and
//     ChaCha20-Poly1305 (Encrypt, Decrypt, Ciphertext)
//   - ECDSA signatures over SHA-256 with RFC 6979 nonces (Sign, Verify)
//   - Key encapsulation used by the stream format (EncapsulateKey,
//     DecapsulateKey)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// All randomness comes from crypto/rand. Nothing in this package keeps
// state between calls, so every function is safe for concurrent use.
// Private scalars never leave a KeyPair; derived symmetric keys and shared
// secrets are wiped with memzero once the operation completes.
package crypto
