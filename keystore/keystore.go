// Package keystore persists the handful of client-side preferences
// that survive restarts: the auth token, the theme, and the remembered
// login email. Values are plain strings in one JSON file; there is no
// schema versioning.
package keystore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Well-known keys. Callers outside this package must use these rather
// than inventing ad hoc names.
const (
	KeyAuthToken       = "auth_token"
	KeyTheme           = "theme"
	KeyRememberedEmail = "remembered_email"
)

// Store is a file-backed string map. Every Set and Delete rewrites the
// file before returning, so two Stores opened on the same path see each
// other's committed writes on reload.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// DefaultPath returns the per-user keystore location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pujadesk", "keystore.json"), nil
}

// Open loads the store at path, creating parent directories as needed.
// A missing file is an empty store, not an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: map[string]string{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.values); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set writes key=value and persists immediately.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.save()
}

// Delete removes key and persists immediately. Deleting an absent key
// is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.save()
}

// save writes the map via a temp file rename so a crash mid-write
// cannot truncate the previous contents. Caller holds the mutex.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
