// internal/services/session_service.go
package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/modgarage/garage-backend/internal/configurator"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionManager owns the live configuration sessions. The configurator
// core assumes a single mutator per session; the HTTP layer can deliver
// requests on any goroutine, so the manager serializes access per session.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session *configurator.Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*sessionEntry),
	}
}

// Create starts a fresh session, optionally bound to a vehicle, and returns
// its id.
func (m *SessionManager) Create(vehicleID string) uuid.UUID {
	session := configurator.NewSession()
	if vehicleID != "" {
		session.SelectVehicle(vehicleID)
	}

	m.mu.Lock()
	m.sessions[session.ID] = &sessionEntry{session: session}
	m.mu.Unlock()

	return session.ID
}

// With runs fn with exclusive access to the session. All reads and
// mutations of a session go through here.
func (m *SessionManager) With(id uuid.UUID, fn func(*configurator.Session) error) error {
	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.session)
}

// Drop discards a session. Sessions are in-memory only; dropping one does
// not touch any saved project.
func (m *SessionManager) Drop(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
