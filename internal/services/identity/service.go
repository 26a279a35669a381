package identity

import (
	"errors"
	"fmt"
	"unicode"

	"cryptem"
	"cryptem/internal/crypto"
	"cryptem/internal/domain"
	"cryptem/internal/log"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	// ErrWrongPassphrase is returned when the passphrase derives a key other
	// than the one in the profile.
	ErrWrongPassphrase = errors.New("wrong passphrase for this identity")
)

// Service manages the local identity using a backing profile store.
//
// The profile holds the salt, KDF costs and public key. The private key
// exists only in memory, inside the returned *cryptem.Crypt.
type Service struct {
	store  domain.ProfileStore
	params crypto.KDFParams
}

// New returns an identity service backed by the given store. New
// identities are derived with params.
func New(s domain.ProfileStore, params crypto.KDFParams) *Service {
	return &Service{store: s, params: params}
}

// GenerateIdentity derives a new identity from passphrase and a fresh salt,
// saves its profile and returns it with a short fingerprint of the public
// key. An existing profile is only replaced when force is set.
func (s *Service) GenerateIdentity(
	passphrase string,
	force bool,
) (*cryptem.Crypt, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return nil, "", ErrWeakPassphrase
	}
	if !force {
		_, err := s.store.LoadProfile()
		switch {
		case err == nil:
			return nil, "", domain.ErrProfileExists
		case !errors.Is(err, domain.ErrNoProfile):
			return nil, "", err
		}
	}

	c, err := cryptem.NewWithParams([]byte(passphrase), s.params)
	if err != nil {
		return nil, "", err
	}
	profile := domain.Profile{
		Version:   domain.ProfileVersion,
		Salt:      c.Salt(),
		KDF:       c.Params(),
		PublicKey: c.PublicKey().Bytes(),
	}
	if err := s.store.SaveProfile(profile); err != nil {
		return nil, "", err
	}
	fp := domain.Fingerprint(c.PublicKey().Fingerprint())
	log.Infow("identity generated", "fingerprint", fp)
	return c, fp, nil
}

// LoadIdentity re-derives the local identity from passphrase.
func (s *Service) LoadIdentity(passphrase string) (*cryptem.Crypt, error) {
	profile, err := s.store.LoadProfile()
	if err != nil {
		return nil, err
	}
	want, err := cryptem.ParsePublicKey(profile.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("profile public key: %w", err)
	}
	c, err := cryptem.RestoreWithParams([]byte(passphrase), profile.Salt, profile.KDF)
	if err != nil {
		return nil, err
	}
	if !c.PublicKey().Equal(want) {
		return nil, ErrWrongPassphrase
	}
	return c, nil
}

// PublicKey returns the stored public key. It needs no passphrase.
func (s *Service) PublicKey() (cryptem.PublicKey, error) {
	profile, err := s.store.LoadProfile()
	if err != nil {
		return cryptem.PublicKey{}, err
	}
	pub, err := cryptem.ParsePublicKey(profile.PublicKey)
	if err != nil {
		return cryptem.PublicKey{}, fmt.Errorf("profile public key: %w", err)
	}
	return pub, nil
}

// FingerprintIdentity returns a short fingerprint of the stored public key.
func (s *Service) FingerprintIdentity() (domain.Fingerprint, error) {
	pub, err := s.PublicKey()
	if err != nil {
		return "", err
	}
	return domain.Fingerprint(pub.Fingerprint()), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
