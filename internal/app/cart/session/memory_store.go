package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/pkg/clock"
)

type entry struct {
	mu      sync.Mutex
	session *contracts.Session
	gone    bool
}

// MemoryStore keeps cart sessions in process memory.
// Each session has its own lock so unrelated carts never contend.
type MemoryStore struct {
	clock clock.Clock

	mu      sync.RWMutex
	entries map[string]*entry
}

func NewMemoryStore(c clock.Clock) *MemoryStore {
	if c == nil {
		c = clock.RealClock{}
	}
	return &MemoryStore{
		clock:   c,
		entries: make(map[string]*entry),
	}
}

func (s *MemoryStore) Create(kind domain.Kind, userID int64) (*contracts.Session, error) {
	cart, err := domain.NewCart(kind)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	sess := &contracts.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Cart:      cart,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.entries[sess.ID] = &entry{session: sess}
	s.mu.Unlock()
	return sess, nil
}

// Update runs fn with the session locked and bumps UpdatedAt when fn succeeds.
func (s *MemoryStore) Update(ctx context.Context, id string, fn func(*contracts.Session) error) error {
	return s.with(ctx, id, func(sess *contracts.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		sess.UpdatedAt = s.clock.Now()
		return nil
	})
}

func (s *MemoryStore) View(ctx context.Context, id string, fn func(*contracts.Session) error) error {
	return s.with(ctx, id, fn)
}

func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	e, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	e.gone = true
	e.mu.Unlock()
	return true
}

// EvictIdle drops sessions untouched for longer than maxIdle and returns how many were removed.
func (s *MemoryStore) EvictIdle(maxIdle time.Duration) int {
	s.mu.RLock()
	stale := make([]string, 0)
	for id, e := range s.entries {
		if !e.mu.TryLock() {
			continue // in use
		}
		if clock.Since(s.clock, e.session.UpdatedAt) > maxIdle {
			stale = append(stale, id)
		}
		e.mu.Unlock()
	}
	s.mu.RUnlock()

	n := 0
	for _, id := range stale {
		if s.Delete(id) {
			n++
		}
	}
	return n
}

// Len reports the number of open sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) with(ctx context.Context, id string, fn func(*contracts.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return contracts.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return contracts.ErrSessionNotFound
	}
	return fn(e.session)
}
