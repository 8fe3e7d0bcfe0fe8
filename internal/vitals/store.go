package vitals

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore appends entries as JSON lines to a flat file. The mutex keeps
// concurrent beacons from interleaving partial lines.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open vitals log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		return fmt.Errorf("failed to append vitals entry: %w", err)
	}

	return nil
}
