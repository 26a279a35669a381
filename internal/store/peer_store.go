package store

import (
	"path/filepath"
	"sort"
	"sync"

	"cryptem/internal/domain"
)

const peersFile = "peers.json"

// PeerFileStore persists the address book to disk.
type PeerFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPeerFileStore returns a PeerFileStore rooted at dir.
func NewPeerFileStore(dir string) *PeerFileStore {
	return &PeerFileStore{dir: dir}
}

func (s *PeerFileStore) path() string { return filepath.Join(s.dir, peersFile) }

func (s *PeerFileStore) load() (map[domain.PeerName]domain.Peer, error) {
	peers := make(map[domain.PeerName]domain.Peer)
	if _, err := readJSON(s.path(), &peers); err != nil {
		return nil, err
	}
	return peers, nil
}

// SavePeer stores or replaces the entry for p.Name.
func (s *PeerFileStore) SavePeer(p domain.Peer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	peers, err := s.load()
	if err != nil {
		return err
	}
	peers[p.Name] = p
	if err := ensureDir(s.dir); err != nil {
		return err
	}
	return writeJSON(s.path(), peers)
}

// LoadPeer retrieves the entry for name.
func (s *PeerFileStore) LoadPeer(name domain.PeerName) (domain.Peer, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	peers, err := s.load()
	if err != nil {
		return domain.Peer{}, false, err
	}
	p, ok := peers[name]
	return p, ok, nil
}

// ListPeers returns all entries sorted by name.
func (s *PeerFileStore) ListPeers() ([]domain.Peer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	peers, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Peer, 0, len(peers))
	for _, p := range peers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeletePeer removes the entry for name and reports whether it existed.
func (s *PeerFileStore) DeletePeer(name domain.PeerName) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	peers, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := peers[name]; !ok {
		return false, nil
	}
	delete(peers, name)
	return true, writeJSON(s.path(), peers)
}

// Compile-time assertion that PeerFileStore implements domain.PeerStore.
var _ domain.PeerStore = (*PeerFileStore)(nil)
