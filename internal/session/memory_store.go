package session

import "sync"

// MemoryStore keeps the session in process memory only. It is the
// ephemeral half of the dual-store pair: a session placed here disappears
// when the client exits, which is exactly what a user who declined
// "remember me" asked for.
type MemoryStore struct {
	mu      sync.RWMutex
	session Session
	present bool
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save implements [Store].
func (m *MemoryStore) Save(session Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = session
	m.present = true

	return nil
}

// Load implements [Store].
func (m *MemoryStore) Load() (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.present {
		return Session{}, ErrSessionNotFound
	}

	return m.session, nil
}

// Clear implements [Store].
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = Session{}
	m.present = false

	return nil
}
