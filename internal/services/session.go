package services

import (
	"sync"

	"github.com/Moetaz101/project-pal/internal/models"
)

// Session is the single current-member slot. There is exactly one per running
// process; it is not persisted and not scoped per connection. Login replaces
// it, logout clears it.
type Session struct {
	mu      sync.RWMutex
	current *models.Member
}

func NewSession() *Session {
	return &Session{}
}

// SetCurrentUser replaces the slot. Passing nil logs out.
func (s *Session) SetCurrentUser(m *models.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m == nil {
		s.current = nil
		return
	}
	cp := *m
	s.current = &cp
}

// CurrentUser returns a copy of the logged-in member, or nil.
func (s *Session) CurrentUser() *models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// IsAuthenticated is true iff a member is logged in.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}
