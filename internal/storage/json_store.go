package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/julianstephens/pickadate/internal/models"
)

type jsonFile struct {
	Version int             `json:"version"`
	Results []models.Result `json:"results"`
}

// JSONStore keeps the result log in a single JSON document.
type JSONStore struct {
	mu    sync.Mutex
	path  string
	store *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &jsonFile{Version: 1}
	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &jsonFile{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) SaveResult(r models.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return errors.New("storage not loaded")
	}
	if r.ID == "" {
		return errors.New("result ID cannot be empty")
	}
	for _, existing := range s.store.Results {
		if existing.ID == r.ID {
			return fmt.Errorf("result already exists: %s", r.ID)
		}
	}

	s.store.Results = append(s.store.Results, r)
	return s.save()
}

func (s *JSONStore) GetResults(limit int) ([]models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, errors.New("storage not loaded")
	}

	results := make([]models.Result, len(s.store.Results))
	copy(results, s.store.Results)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CompletedAt.After(results[j].CompletedAt)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *JSONStore) GetResult(id string) (models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return models.Result{}, errors.New("storage not loaded")
	}

	for _, r := range s.store.Results {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Result{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
