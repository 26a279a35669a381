package cryptem

import "cryptem/internal/crypto"

// Errors returned by this package. Match them with errors.Is; filesystem
// failures from the file helpers are returned as *fs.PathError instead.
var (
	ErrDerivation     = crypto.ErrDerivation
	ErrInvalidKey     = crypto.ErrInvalidKey
	ErrMalformedInput = crypto.ErrMalformedInput
	ErrAuthentication = crypto.ErrAuthentication
	ErrNoPrivateKey   = crypto.ErrNoPrivateKey
)
