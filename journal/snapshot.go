package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Store persists a book snapshot plus a last-update timestamp string. The
// engine only serializes and deserializes the two record collections; what
// the backend does with the bytes is its own business.
type Store interface {
	Load() (*Book, string, error)
	Save(b *Book, lastUpdate string) error
	Close() error
}

// JSONStore keeps the whole book in a single JSON file.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

type snapshot struct {
	Positions  []Position    `json:"positions"`
	Closed     []ClosedTrade `json:"closed"`
	LastUpdate string        `json:"lastUpdate,omitempty"`
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads the snapshot. A missing file is an empty book, not an error.
func (s *JSONStore) Load() (*Book, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Book{}, "", nil
		}
		return nil, "", fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, "", fmt.Errorf("parse snapshot: %w", err)
	}
	return &Book{Positions: snap.Positions, Closed: snap.Closed}, snap.LastUpdate, nil
}

// Save writes the snapshot through a temp file and rename so a crash cannot
// leave a half-written journal behind.
func (s *JSONStore) Save(b *Book, lastUpdate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(snapshot{
		Positions:  b.Positions,
		Closed:     b.Closed,
		LastUpdate: lastUpdate,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error { return nil }
