package memory

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
)

// SessionRepo хранит сессии в памяти процесса. Завершение сессии удаляет её корзину.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
	ttl      time.Duration
	now      func() time.Time
	logger   logger.Logger
}

func NewSessionRepo(cfg *cfg.SessionCfg, logger logger.Logger) *SessionRepo {
	return &SessionRepo{
		sessions: make(map[uuid.UUID]*domain.Session),
		ttl:      cfg.TTL,
		now:      time.Now,
		logger:   logger.With("component", "sessions"),
	}
}

// Create создаёт сессию с пустой корзиной.
func (r *SessionRepo) Create(ctx context.Context) (*domain.Session, error) {
	session := domain.NewSession(r.now())

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = session
	return session, nil
}

// Get возвращает живую сессию и продлевает её. Просроченная сессия удаляется.
func (r *SessionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
	}

	if session.Expired(now, r.ttl) {
		delete(r.sessions, id)
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
	}

	session.LastSeen = now
	return session, nil
}

func (r *SessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// Sweep удаляет сессии, простаивавшие дольше TTL, и возвращает их количество.
func (r *SessionRepo) Sweep(ctx context.Context, now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if session.Expired(now, r.ttl) {
			delete(r.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		r.logger.Debugf("swept %d session(s), %d left", removed, len(r.sessions))
	}

	return removed
}

func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
