package peer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"cryptem"
	"cryptem/internal/domain"
	"cryptem/internal/log"
)

// ErrInvalidName is returned for empty names or names with whitespace.
var ErrInvalidName = errors.New("peer name must be non-empty and contain no whitespace")

// Service stores peers and turns them into Encryptors.
type Service struct {
	store domain.PeerStore
}

// New returns a peer service backed by the given store.
func New(s domain.PeerStore) *Service { return &Service{store: s} }

// AddPeer validates publicKey (hex, optional 0x) and stores it under name,
// replacing an existing entry.
func (s *Service) AddPeer(name domain.PeerName, publicKey string) (domain.Peer, error) {
	if !validName(name) {
		return domain.Peer{}, ErrInvalidName
	}
	pub, err := cryptem.ParsePublicKeyHex(publicKey)
	if err != nil {
		return domain.Peer{}, err
	}
	p := domain.Peer{Name: name, PublicKey: pub.Bytes()}
	if err := s.store.SavePeer(p); err != nil {
		return domain.Peer{}, err
	}
	log.Infow("peer added", "name", name, "fingerprint", pub.Fingerprint())
	return p, nil
}

// RemovePeer deletes name from the address book.
func (s *Service) RemovePeer(name domain.PeerName) error {
	ok, err := s.store.DeletePeer(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrPeerNotFound, name)
	}
	return nil
}

// ListPeers returns every stored peer sorted by name.
func (s *Service) ListPeers() ([]domain.Peer, error) {
	return s.store.ListPeers()
}

// Resolve returns an Encryptor for a stored peer name or, failing that, for
// nameOrKey parsed as a hex public key.
func (s *Service) Resolve(nameOrKey string) (*cryptem.Encryptor, error) {
	if validName(domain.PeerName(nameOrKey)) {
		p, ok, err := s.store.LoadPeer(domain.PeerName(nameOrKey))
		if err != nil {
			return nil, err
		}
		if ok {
			return cryptem.ParseEncryptor(p.PublicKey)
		}
	}
	pub, err := cryptem.ParsePublicKeyHex(nameOrKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is neither a known peer nor a public key", domain.ErrPeerNotFound, nameOrKey)
	}
	return cryptem.NewEncryptor(pub)
}

func validName(name domain.PeerName) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsFunc(string(name), unicode.IsSpace)
}

// Compile-time assertion that Service implements domain.PeerService.
var _ domain.PeerService = (*Service)(nil)
