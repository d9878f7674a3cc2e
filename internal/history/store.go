package history

import (
	"github.com/cyberbull/startupdocs/internal/document"
)

// Store is one session's generated-document history. It is append-only:
// records keep insertion order and are never reordered, deduplicated, or
// deleted for the lifetime of the session.
type Store interface {
	Append(doc document.GeneratedDocument) error
	List() ([]document.GeneratedDocument, error)
	Len() (int, error)
	Close() error
}

// Factory creates the history store for a new session.
type Factory func(sessionID string) (Store, error)
