package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session связывает cookie браузера с корзиной. Корзина живёт ровно столько, сколько сессия.
type Session struct {
	ID        uuid.UUID
	Cart      *Cart
	CreatedAt time.Time
	LastSeen  time.Time
}

func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Cart:      NewCart(),
		CreatedAt: now,
		LastSeen:  now,
	}
}

// Expired сообщает, простаивала ли сессия дольше ttl.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastSeen) > ttl
}
