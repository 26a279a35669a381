// Package cryptem derives a secp256k1 identity from a password and uses it
// to encrypt, decrypt, sign and verify.
//
// A Crypt holds the private key and is the only type that can decrypt or
// sign. Its public half is handed out as an Encryptor, which can encrypt to
// the Crypt and verify its signatures but has no access to private key
// material. Both satisfy PublicIdentity; only Crypt satisfies FullIdentity.
//
// The private key is never stored. It is re-derived with Argon2id from the
// password and the identity's salt and KDF parameters, which are public and
// may be saved anywhere:
//
//	c, err := cryptem.New([]byte("my_password"))
//	salt, params := c.Salt(), c.Params()
//	// later
//	c, err = cryptem.RestoreWithParams([]byte("my_password"), salt, params)
//
// Messages are sealed with ECIES over ChaCha20-Poly1305 and signatures are
// deterministic ECDSA. Files and streams of any size are handled in chunks
// by EncryptStream and DecryptStream, and EncryptFile and DecryptFile never
// leave a partially written output behind.
//
// Crypt and Encryptor are immutable and safe for concurrent use.
package cryptem
