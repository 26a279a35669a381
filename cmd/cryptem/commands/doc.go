// Package commands defines the cryptem CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init         Derive a new identity from a passphrase
//   - pubkey       Print the identity public key
//   - fingerprint  Print the identity fingerprint
//   - encrypt      Encrypt a file to yourself or a peer
//   - decrypt      Decrypt a file with your passphrase
//   - sign         Sign a file
//   - verify       Verify a file signature
//   - peer         Manage the address book (add, list, rm)
//
// # Implementation
//
// The root command loads the configuration (flags, CRYPTEM_* environment,
// cryptem.yml in the home directory) and builds the stores and services
// before any subcommand runs. Only decrypt and sign need the passphrase;
// everything else works from public material.
package commands
