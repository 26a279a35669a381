// Package store provides file-based persistence for cryptem's public data.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Stored files live under the configured home directory
// and are replaced atomically with mode 0600.
//
// The package includes stores for:
//   - The identity profile: salt, KDF costs and public key (ProfileFileStore)
//   - The peer address book (PeerFileStore)
//
// Nothing here ever sees a passphrase or private key.
package store
