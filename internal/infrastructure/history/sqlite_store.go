// Package history persists assistant exchanges so past conversations can
// be searched from the CLI.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/iris-go/internal/domain"
	"github.com/doeshing/iris-go/internal/pkg/filesystem"
	"github.com/doeshing/iris-go/internal/ports"
)

// SQLiteStore persists transcripts in a SQLite database. When the database
// cannot be opened it degrades to the jsonl file store rather than losing
// records.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the transcript database at path. An
// empty path defaults to ~/.iris/history/transcript.db.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".iris", "history", "transcript.db")
	}
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS transcript (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT,
		timestamp TEXT,
		input TEXT,
		response TEXT,
		source TEXT
	);`)
	return err
}

// Save inserts a new exchange.
func (s *SQLiteStore) Save(record domain.TranscriptRecord) error {
	if s.db == nil {
		return (&FileStore{path: s.fallbackPath()}).Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO transcript
		(session_id, timestamp, input, response, source)
		VALUES (?, ?, ?, ?, ?)`,
		record.SessionID,
		record.Timestamp.Format(time.RFC3339),
		record.Input,
		record.Response,
		record.Source,
	)
	return err
}

// Records returns exchanges, newest first. limit and search are optional.
func (s *SQLiteStore) Records(limit int, search string) ([]domain.TranscriptRecord, error) {
	if s.db == nil {
		return (&FileStore{path: s.fallbackPath()}).Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT session_id, timestamp, input, response, source FROM transcript")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE input LIKE ? OR response LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.TranscriptRecord
	for rows.Next() {
		var rec domain.TranscriptRecord
		var ts string
		if err := rows.Scan(&rec.SessionID, &ts, &rec.Input, &rec.Response, &rec.Source); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes every stored exchange.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return (&FileStore{path: s.fallbackPath()}).Clear()
	}
	_, err := s.db.Exec("DELETE FROM transcript")
	return err
}

// Path returns the database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) fallbackPath() string {
	return strings.TrimSuffix(s.path, filepath.Ext(s.path)) + ".jsonl"
}

var _ ports.TranscriptRepository = (*SQLiteStore)(nil)
