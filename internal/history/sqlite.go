package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cyberbull/startupdocs/internal/document"
)

// DB is a SQLite-backed history database shared by all sessions. Each
// session gets a Store view scoped to its own rows, so histories stay
// isolated while sharing one file.
type DB struct {
	db *sql.DB
	mu sync.Mutex
}

// OpenDB opens (creating if needed) the history database at path.
func OpenDB(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &DB{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return s, nil
}

func (s *DB) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id    TEXT NOT NULL,
			document_type TEXT NOT NULL,
			content       TEXT NOT NULL,
			created_at    TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_documents_session ON documents(session_id, id);
	`)
	return err
}

// Session returns the append-only history view for one session id.
func (s *DB) Session(sessionID string) Store {
	return &sqliteStore{db: s, sessionID: sessionID}
}

// Close closes the underlying database.
func (s *DB) Close() error {
	return s.db.Close()
}

type sqliteStore struct {
	db        *DB
	sessionID string
}

func (s *sqliteStore) Append(doc document.GeneratedDocument) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	_, err := s.db.db.Exec(`
		INSERT INTO documents (session_id, document_type, content, created_at)
		VALUES (?, ?, ?, ?)
	`, s.sessionID, doc.DocumentType, doc.Content, doc.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *sqliteStore) List() ([]document.GeneratedDocument, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	rows, err := s.db.db.Query(`
		SELECT document_type, content, created_at
		FROM documents
		WHERE session_id = ?
		ORDER BY id ASC
	`, s.sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []document.GeneratedDocument
	for rows.Next() {
		var doc document.GeneratedDocument
		var createdAt string
		if err := rows.Scan(&doc.DocumentType, &doc.Content, &createdAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			doc.CreatedAt = t
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *sqliteStore) Len() (int, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	row := s.db.db.QueryRow(`SELECT COUNT(*) FROM documents WHERE session_id = ?`, s.sessionID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Close is a no-op for session views; the shared DB owns the connection.
func (s *sqliteStore) Close() error { return nil }
