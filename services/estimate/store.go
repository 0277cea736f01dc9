package estimate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"cerberus/models"
)

// StorageKey names the single persisted draft.
const StorageKey = "cv_estimate_v2"

// Store persists the one current draft estimate. Save overwrites wholesale.
type Store interface {
	Load() (*models.DraftEstimate, error)
	Save(est models.DraftEstimate) error
}

// FileStore keeps the draft as one JSON blob named after StorageKey inside Dir.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) path() string {
	return filepath.Join(s.Dir, StorageKey+".json")
}

// Load returns nil when nothing is stored. An unreadable blob is treated the
// same way so a corrupt draft never blocks a new estimate.
func (s *FileStore) Load() (*models.DraftEstimate, error) {
	b, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("estimate store: read: %w", err)
	}

	var est models.DraftEstimate
	if err := json.Unmarshal(b, &est); err != nil {
		return nil, nil
	}
	return &est, nil
}

// Save writes via a temp file then rename.
func (s *FileStore) Save(est models.DraftEstimate) error {
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return fmt.Errorf("estimate store: mkdir: %w", err)
	}
	b, err := json.MarshalIndent(est, "", "  ")
	if err != nil {
		return fmt.Errorf("estimate store: encode: %w", err)
	}

	f, err := os.CreateTemp(s.Dir, StorageKey+".tmp-*")
	if err != nil {
		return fmt.Errorf("estimate store: temp: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("estimate store: write: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("estimate store: close: %w", err)
	}
	return os.Rename(tmp, s.path())
}

// MemoryStore keeps the draft in process. Loads return a copy.
type MemoryStore struct {
	mu  sync.Mutex
	est *models.DraftEstimate
}

func (s *MemoryStore) Load() (*models.DraftEstimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.est == nil {
		return nil, nil
	}
	c := clone(*s.est)
	return &c, nil
}

func (s *MemoryStore) Save(est models.DraftEstimate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := clone(est)
	s.est = &c
	return nil
}

func clone(est models.DraftEstimate) models.DraftEstimate {
	out := est
	if est.PackageID != nil {
		id := *est.PackageID
		out.PackageID = &id
	}
	if est.PostOnly != nil {
		id := *est.PostOnly
		out.PostOnly = &id
	}
	out.AddonsFixed = append([]models.FixedAddonSnapshot(nil), est.AddonsFixed...)
	out.AddonsQuoted = append([]models.QuotedAddonSnapshot(nil), est.AddonsQuoted...)
	return out
}
