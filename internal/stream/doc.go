// Package stream encrypts byte streams of unbounded length to a secp256k1
// public key without holding the whole payload in memory.
//
// # Format
//
//	header  = magic "CRYPTEM\x01" (8) || ephemeral public key (33)
//	chunk_i = ChaCha20-Poly1305(key, nonce_i, plaintext_i, header)
//
// The payload key is derived once per stream from ECDH between a fresh
// ephemeral key and the recipient (HKDF-SHA256, info "cryptem/stream/v1").
// Plaintext is cut into ChunkSize pieces; every chunk but the last is full,
// so chunk boundaries are recovered on decrypt from the fixed size alone.
//
//	nonce_i = 0x000000 || big-endian uint64(i) || last flag (0x01 on the final chunk)
//
// The last flag makes truncation at a chunk boundary and appended data
// detectable. An empty input is encoded as the header plus one empty final
// chunk.
//
// # Errors
//
// A bad magic or short header yields crypto.ErrMalformedInput, an invalid
// ephemeral key crypto.ErrInvalidKey, and any chunk that fails to open
// crypto.ErrAuthentication. Decryption stops at the first failing chunk;
// everything written to the sink before that point came from chunks that
// authenticated, and callers that need all-or-nothing output must stage it
// (see the file helpers in the root package).
package stream
