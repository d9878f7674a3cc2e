package history

import (
	"sync"

	"github.com/cyberbull/startupdocs/internal/document"
)

// Memory is the default in-process history store. Appends are serialized
// by the mutex so concurrent requests against the same session cannot
// interleave writes.
type Memory struct {
	mu   sync.Mutex
	docs []document.GeneratedDocument
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(doc document.GeneratedDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, doc)
	return nil
}

func (m *Memory) List() ([]document.GeneratedDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]document.GeneratedDocument, len(m.docs))
	copy(out, m.docs)
	return out, nil
}

func (m *Memory) Len() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs), nil
}

func (m *Memory) Close() error { return nil }
