package tabsession

import (
	"context"
	"log"
	"sync"

	tabrepo "github.com/kristian0808/arcade-frontdesk/internal/repository/tab"
)

// Manager hands out one Session per front-desk station. Stations are created
// lazily on first use and live for the process lifetime.
type Manager struct {
	repo   tabrepo.Repository
	logger *log.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(repo tabrepo.Repository, logger *log.Logger) *Manager {
	return &Manager{
		repo:     repo,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Session returns the session for the station, creating it if needed.
func (m *Manager) Session(station string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[station]
	if !ok {
		s = NewSession(m.repo, m.logger)
		m.sessions[station] = s
	}
	return s
}

// RefreshActive re-validates every session holding a tab. Push notifications
// land here so fresher backend state flows through the normal reconciliation
// path instead of being merged in directly.
func (m *Manager) RefreshActive(ctx context.Context) {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		if err := s.Refresh(ctx); err != nil {
			m.logger.Printf("tabsession: push refresh failed: %v", err)
		}
	}
}
