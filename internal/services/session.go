package services

import (
	"log"
	"sync"
	"time"

	"github.com/homemadefoods/orderbot-backend/internal/models"
)

// SessionManager owns the single in-flight conversation for each user.
// The map itself is guarded by mu; turn-level serialization per user is
// a separate concern handled by Acquire.
type SessionManager struct {
	sessions map[string]*models.Session
	mu       sync.RWMutex

	turnLocks map[string]*sync.Mutex
	turnMu    sync.Mutex

	sessionTTL time.Duration // 0 disables expiry
}

// NewSessionManager creates a session manager. A positive ttl starts a
// cleanup routine that drops sessions idle past the ttl.
func NewSessionManager(ttl time.Duration) *SessionManager {
	sm := &SessionManager{
		sessions:   make(map[string]*models.Session),
		turnLocks:  make(map[string]*sync.Mutex),
		sessionTTL: ttl,
	}

	if ttl > 0 {
		go sm.cleanupExpiredSessions()
	}

	return sm
}

// Acquire blocks until the caller holds the user's turn lock and returns
// the release func. One user's turns run strictly one at a time; distinct
// users proceed in parallel.
func (sm *SessionManager) Acquire(userID string) func() {
	sm.turnMu.Lock()
	lock, exists := sm.turnLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		sm.turnLocks[userID] = lock
	}
	sm.turnMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// GetOrCreate returns the user's session, creating a fresh one in the
// category step on first contact.
func (sm *SessionManager) GetOrCreate(userID string) *models.Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if session, exists := sm.sessions[userID]; exists {
		session.LastActive = time.Now()
		return session
	}

	session := sm.newSession(userID)
	sm.sessions[userID] = session
	log.Printf("Session created for %s", userID)

	return session
}

// Reset discards any existing session and starts a fresh one
func (sm *SessionManager) Reset(userID string) *models.Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session := sm.newSession(userID)
	sm.sessions[userID] = session

	return session
}

// Get returns the user's session without creating one
func (sm *SessionManager) Get(userID string) (*models.Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[userID]
	return session, exists
}

// Remove deletes the user's session. No-op when absent, so a duplicate
// removal under concurrent requests never fails.
func (sm *SessionManager) Remove(userID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.sessions, userID)
}

// ActiveSessions returns the number of in-flight conversations (for monitoring)
func (sm *SessionManager) ActiveSessions() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return len(sm.sessions)
}

func (sm *SessionManager) newSession(userID string) *models.Session {
	now := time.Now()
	return &models.Session{
		UserID:     userID,
		Step:       models.StepCategory,
		CreatedAt:  now,
		LastActive: now,
	}
}

// cleanupExpiredSessions runs periodically to drop abandoned sessions
func (sm *SessionManager) cleanupExpiredSessions() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		sm.mu.Lock()
		for userID, session := range sm.sessions {
			if time.Since(session.LastActive) > sm.sessionTTL {
				delete(sm.sessions, userID)
				log.Printf("Cleaned up expired session for %s", userID)
			}
		}
		sm.mu.Unlock()
	}
}
