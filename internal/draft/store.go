// Package draft provides a durable key/value store for in-progress profile
// state, so restarting the client does not discard unsaved work.
package draft

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Storage keys for the profile flow.
const (
	KeyResumeData       = "profile_resume_data"
	KeyChatData         = "profile_chat_data"
	KeyJobDescription   = "profile_job_description"
	KeyJobDescriptionID = "profile_job_description_id"
	KeyLastUpdated      = "profile_last_updated"
)

// Store is a file-backed key/value store with an in-memory overlay. The
// overlay is authoritative for the current session: disk failures degrade a
// save to memory-only instead of failing the caller.
type Store struct {
	dir string

	mu    sync.RWMutex
	cache map[string]json.RawMessage
}

// NewStore creates a store rooted at dir, creating it when missing.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, cache: make(map[string]json.RawMessage)}, nil
}

// Load returns the stored value for key. Absent or malformed entries are
// reported as not found, never as errors.
func (s *Store) Load(key string, v any) bool {
	s.mu.RLock()
	raw, ok := s.cache[key]
	s.mu.RUnlock()

	if !ok {
		data, err := os.ReadFile(s.path(key))
		if err != nil {
			return false
		}
		raw = data
	}

	if err := json.Unmarshal(raw, v); err != nil {
		// Malformed entries are treated as absent
		return false
	}

	s.mu.Lock()
	s.cache[key] = raw
	s.mu.Unlock()
	return true
}

// Save serializes and stores a value; last writer wins. Serialization or
// disk errors are swallowed: the in-memory copy stays authoritative.
func (s *Store) Save(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("[draft] failed to serialize %s: %v", key, err)
		return
	}

	s.mu.Lock()
	s.cache[key] = raw
	s.mu.Unlock()

	if err := os.WriteFile(s.path(key), raw, 0o644); err != nil {
		log.Printf("[draft] failed to persist %s: %v", key, err)
	}
}

// Clear removes the entry for key.
func (s *Store) Clear(key string) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		log.Printf("[draft] failed to remove %s: %v", key, err)
	}
}

// path maps a key to a file name; keys are flattened to a single path
// segment before hitting the filesystem.
func (s *Store) path(key string) string {
	key = strings.NewReplacer("/", "_", "\\", "_").Replace(key)
	return filepath.Join(s.dir, key+".json")
}
