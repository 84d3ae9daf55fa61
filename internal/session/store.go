package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Store maps opaque session tokens to user IDs. Implementations must be safe
// for concurrent use.
type Store interface {
	Put(token string, userID uint64) error
	Get(token string) (uint64, bool)
	Remove(token string)
}

// NewToken generates an unguessable opaque session token.
func NewToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

type memoryEntry struct {
	userID    uint64
	expiresAt time.Time
}

// MemoryStore is an in-process Store. Sessions are lost on restart and
// expire after the configured TTL.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemoryStore creates a MemoryStore. A non-positive ttl disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (s *MemoryStore) Put(token string, userID uint64) error {
	entry := memoryEntry{userID: userID}
	if s.ttl > 0 {
		entry.expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[token] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(token string) (uint64, bool) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		return 0, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.Remove(token)
		return 0, false
	}
	return entry.userID, true
}

func (s *MemoryStore) Remove(token string) {
	s.mu.Lock()
	delete(s.entries, token)
	s.mu.Unlock()
}
