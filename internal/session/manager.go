package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"drivethru/internal/order"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is one kiosk lane: one customer, one order. The order is
// only ever mutated by that customer's synchronous requests, so the
// manager locks the session map, not the orders.
type Session struct {
	ID        string
	Order     *order.Order
	CreatedAt time.Time
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Start creates a session with an empty order in the ordering stage.
func (m *Manager) Start() *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Order:     order.New(),
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// End destroys the session and its order.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
