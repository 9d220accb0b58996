package sessions

import (
	"log/slog"
	"sync"
	"time"

	"booking-wizard/internal/infra"
	"booking-wizard/internal/pkg/clock"
	"booking-wizard/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store is the in-memory wizard session registry. Drafts are deliberately
// never persisted; only the submitted payload is durable, and it lives
// upstream. Abandoned sessions fall out after the TTL.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*shared.Session

	clock  clock.Clock
	ttl    time.Duration
	logger *slog.Logger
}

func NewStore(clk clock.Clock, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*shared.Session),
		clock:    clk,
		ttl:      ttl,
		logger:   logger,
	}
}

func (st *Store) Add(s *shared.Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID()] = s
}

func (st *Store) Find(id uuid.UUID) (*shared.Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if ok && s.ExpiredAt(st.clock.Now(), st.ttl) {
		st.Remove(id)
		ok = false
	}
	if !ok {
		return nil, infra.WrapInfraErr(st.logger, infra.KindNotFound, "session not found", nil)
	}
	return s, nil
}

func (st *Store) Remove(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// RemoveExpired drops sessions idle past the TTL and reports how many
// went. The sweeper in bootstrap calls this on a ticker.
func (st *Store) RemoveExpired() int {
	now := st.clock.Now()

	st.mu.RLock()
	var expired []uuid.UUID
	for id, s := range st.sessions {
		if s.ExpiredAt(now, st.ttl) {
			expired = append(expired, id)
		}
	}
	st.mu.RUnlock()

	for _, id := range expired {
		st.Remove(id)
	}
	if len(expired) > 0 {
		st.logger.Info("swept expired wizard sessions", "count", len(expired))
	}
	return len(expired)
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
