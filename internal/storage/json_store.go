package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dsouzarc/incast/internal/models"
)

type Store struct {
	Version int             `json:"version"`
	Records []models.Record `json:"records"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Records: []models.Record{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'incast init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Records == nil {
		s.store.Records = []models.Record{}
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

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) SaveRecord(record models.Record) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Records = append(s.store.Records, record)
	return s.save()
}

// GetRecords returns stored predictions, newest first. A non-positive
// limit returns everything.
func (s *JSONStore) GetRecords(limit int) ([]models.Record, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	records := make([]models.Record, len(s.store.Records))
	copy(records, s.store.Records)
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})

	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}

func (s *JSONStore) GetGroups() ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	seen := make(map[string]bool)
	var groups []string
	for _, record := range s.store.Records {
		if !seen[record.AssignmentGroup] {
			seen[record.AssignmentGroup] = true
			groups = append(groups, record.AssignmentGroup)
		}
	}
	sort.Strings(groups)
	return groups, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
