// Package peer manages the local address book of public keys that the
// user encrypts to and verifies signatures from.
package peer
