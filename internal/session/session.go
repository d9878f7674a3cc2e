package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/cyberbull/startupdocs/internal/history"
)

// Session scopes one user's generation history. Sessions are explicitly
// created and torn down by the Manager; the pipeline only ever appends to
// the session it was handed.
type Session struct {
	ID    string
	store history.Store

	mu       sync.Mutex
	lastUsed time.Time
}

// History returns the session's append-only document store.
func (s *Session) History() history.Store {
	s.Touch()
	return s.store
}

// Touch marks the session as recently used.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastUsed = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Manager owns the live sessions. Idle sessions are swept on a cron
// schedule once StartJanitor is called.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	factory  history.Factory
	ttl      time.Duration
	cron     *cron.Cron
	log      *logrus.Logger
}

// NewManager creates a session manager. ttl bounds how long an idle
// session is kept; zero disables sweeping.
func NewManager(factory history.Factory, ttl time.Duration, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		factory:  factory,
		ttl:      ttl,
		log:      log,
	}
}

// Create makes a new session with a fresh id.
func (m *Manager) Create() (*Session, error) {
	return m.create(uuid.NewString())
}

func (m *Manager) create(id string) (*Session, error) {
	store, err := m.factory(id)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	m.mu.Lock()
	// Re-check under the write lock: a concurrent GetOrCreate for the same
	// id may have raced past the read-locked miss. The first insert wins;
	// the losing store is discarded so no appends land in an orphan.
	if existing, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		_ = store.Close()
		existing.Touch()
		return existing, nil
	}
	s := &Session{ID: id, store: store, lastUsed: time.Now()}
	m.sessions[id] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns an existing session.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// GetOrCreate returns the session with the given id, creating it if it
// does not exist yet.
func (m *Manager) GetOrCreate(id string) (*Session, error) {
	if s, ok := m.Get(id); ok {
		s.Touch()
		return s, nil
	}
	return m.create(id)
}

// Close tears down one session and its store.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		_ = s.store.Close()
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartJanitor schedules idle-session sweeping. spec is a cron spec such
// as "@every 5m".
func (m *Manager) StartJanitor(spec string) error {
	if m.ttl <= 0 {
		return nil
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, m.sweep); err != nil {
		return fmt.Errorf("failed to schedule session janitor: %w", err)
	}
	c.Start()
	m.cron = c
	return nil
}

// Stop halts the janitor and closes all sessions.
func (m *Manager) Stop() {
	if m.cron != nil {
		m.cron.Stop()
	}
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()
	for _, s := range sessions {
		_ = s.store.Close()
	}
}

func (m *Manager) sweep() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		_ = s.store.Close()
		m.log.WithField("session", s.ID).Debug("swept idle session")
	}
}
