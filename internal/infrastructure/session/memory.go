// Package session provides the in-process session registry. State lives in
// volatile memory: a restart empties it, and the auth gate admits tokens
// with no registry entry.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// MemoryRegistry is a lock-protected map of userID to current session.
// Two logins for the same user racing resolve last-write-wins.
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{sessions: make(map[string]*domain.Session)}
}

func (r *MemoryRegistry) CreateSession(_ context.Context, userID, token string) error {
	now := time.Now().UTC()
	r.mu.Lock()
	r.sessions[userID] = &domain.Session{
		UserID:     userID,
		Token:      token,
		CreatedAt:  now,
		LastActive: now,
	}
	r.mu.Unlock()
	return nil
}

func (r *MemoryRegistry) RemoveSession(_ context.Context, userID string) error {
	r.mu.Lock()
	delete(r.sessions, userID)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRegistry) CurrentToken(_ context.Context, userID string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[userID]
	if !ok {
		return "", false, nil
	}
	return s.Token, true, nil
}

func (r *MemoryRegistry) Touch(_ context.Context, userID string) error {
	r.mu.Lock()
	if s, ok := r.sessions[userID]; ok {
		s.LastActive = time.Now().UTC()
	}
	r.mu.Unlock()
	return nil
}

// Len reports the number of tracked sessions.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
