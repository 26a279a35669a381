package cryptem

import (
	"bytes"
	"io"

	"cryptem/internal/crypto"
	"cryptem/internal/log"
	"cryptem/internal/stream"
)

// Crypt is a full identity: a key pair derived from a password together
// with the salt and parameters needed to derive it again.
type Crypt struct {
	kp     *crypto.KeyPair
	salt   []byte
	params KDFParams
}

// New derives a new identity from password with a fresh random salt and
// DefaultKDFParams.
func New(password []byte) (*Crypt, error) {
	return NewWithParams(password, DefaultKDFParams)
}

// NewWithParams is New with explicit KDF costs.
func NewWithParams(password []byte, params KDFParams) (*Crypt, error) {
	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, err
	}
	return RestoreWithParams(password, salt, params)
}

// Restore re-derives the identity created by New for password and salt.
func Restore(password, salt []byte) (*Crypt, error) {
	return RestoreWithParams(password, salt, DefaultKDFParams)
}

// RestoreWithParams re-derives an identity from its password, salt and KDF
// parameters. The same inputs always yield the same key pair.
func RestoreWithParams(password, salt []byte, params KDFParams) (*Crypt, error) {
	kp, err := crypto.DeriveKeyPair(password, salt, params)
	if err != nil {
		return nil, err
	}
	log.Debugw("identity derived", "fingerprint", kp.Public().Fingerprint(), "kdfTime", params.Time, "kdfMemoryKiB", params.MemoryKiB)
	return &Crypt{kp: kp, salt: bytes.Clone(salt), params: params}, nil
}

func (c *Crypt) PublicKey() PublicKey { return c.kp.Public() }

// Salt returns a copy of the identity's salt.
func (c *Crypt) Salt() []byte { return bytes.Clone(c.salt) }

func (c *Crypt) Params() KDFParams { return c.params }

// Encryptor returns the public half of c.
func (c *Crypt) Encryptor() *Encryptor { return &Encryptor{pub: c.kp.Public()} }

// Encrypt seals message to c's own public key.
func (c *Crypt) Encrypt(message []byte) ([]byte, error) {
	return seal(message, c.kp.Public())
}

// EncryptTo seals message to another identity's public key.
func (c *Crypt) EncryptTo(message []byte, to PublicKey) ([]byte, error) {
	return seal(message, to)
}

// Decrypt opens a ciphertext produced by Encrypt on c or on any Encryptor
// for c's public key. Tampered input fails with ErrAuthentication and
// never yields plaintext.
func (c *Crypt) Decrypt(ciphertext []byte) ([]byte, error) {
	ct, err := crypto.ParseCiphertext(ciphertext)
	if err != nil {
		return nil, err
	}
	return crypto.Decrypt(ct, c.kp)
}

// Sign returns the 64-byte signature R||S of message.
func (c *Crypt) Sign(message []byte) ([]byte, error) {
	return crypto.Sign(message, c.kp)
}

// Verify reports whether signature is c's signature of message.
func (c *Crypt) Verify(message, signature []byte) (bool, error) {
	return crypto.Verify(message, signature, c.kp.Public())
}

// EncryptStream encrypts src to c's own public key.
func (c *Crypt) EncryptStream(dst io.Writer, src io.Reader) (int64, error) {
	return stream.Encrypt(dst, src, c.kp.Public())
}

// DecryptStream decrypts src into dst and returns the number of plaintext
// bytes written. On failure dst may already hold the plaintext of the
// chunks that authenticated; use DecryptFile for all-or-nothing output.
func (c *Crypt) DecryptStream(dst io.Writer, src io.Reader) (int64, error) {
	return stream.Decrypt(dst, src, c.kp)
}

// EncryptFile encrypts the file at inPath to c's own public key.
func (c *Crypt) EncryptFile(inPath, outPath string) error {
	return transformFile(inPath, outPath, c.EncryptStream)
}

// DecryptFile decrypts the file at inPath into outPath. outPath is only
// created once the whole input has authenticated.
func (c *Crypt) DecryptFile(inPath, outPath string) error {
	return transformFile(inPath, outPath, c.DecryptStream)
}
