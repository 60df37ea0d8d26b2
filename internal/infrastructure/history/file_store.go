package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/doeshing/iris-go/internal/domain"
	"github.com/doeshing/iris-go/internal/pkg/filesystem"
	"github.com/doeshing/iris-go/internal/ports"
)

// FileStore appends transcripts to a jsonl file. It is the fallback when
// SQLite is unavailable.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a transcript store at path, defaulting to
// ~/.iris/history/transcript.jsonl.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".iris", "history", "transcript.jsonl")
	}
	return &FileStore{path: path}
}

// Save appends one exchange.
func (f *FileStore) Save(record domain.TranscriptRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Records loads exchanges newest first, filtered and truncated like the
// SQLite store.
func (f *FileStore) Records(limit int, search string) ([]domain.TranscriptRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var records []domain.TranscriptRecord
	// Stored oldest first, returned newest first.
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) == 0 {
			continue
		}
		var rec domain.TranscriptRecord
		if err := json.Unmarshal(lines[i], &rec); err != nil {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.Input), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(rec.Response), strings.ToLower(search)) {
			continue
		}
		records = append(records, rec)
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	return records, nil
}

// Clear removes the transcript file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

var _ ports.TranscriptRepository = (*FileStore)(nil)
