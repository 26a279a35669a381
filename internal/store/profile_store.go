package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"cryptem/internal/domain"
)

const profileFile = "profile.json"

// ProfileFileStore persists the identity profile to disk.
type ProfileFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewProfileFileStore returns a ProfileFileStore rooted at dir.
func NewProfileFileStore(dir string) *ProfileFileStore {
	return &ProfileFileStore{dir: dir}
}

// SaveProfile writes p, replacing any previous profile.
func (s *ProfileFileStore) SaveProfile(p domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ensureDir(s.dir); err != nil {
		return err
	}
	return writeJSON(filepath.Join(s.dir, profileFile), p)
}

// LoadProfile reads the profile, or returns domain.ErrNoProfile.
func (s *ProfileFileStore) LoadProfile() (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, profileFile)
	var p domain.Profile
	found, err := readJSON(path, &p)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("read %s: %w", path, err)
	}
	if !found {
		return domain.Profile{}, domain.ErrNoProfile
	}
	if p.Version != domain.ProfileVersion {
		return domain.Profile{}, fmt.Errorf("%s: unsupported profile version %d", path, p.Version)
	}
	return p, nil
}

// Compile-time assertion that ProfileFileStore implements domain.ProfileStore.
var _ domain.ProfileStore = (*ProfileFileStore)(nil)
