package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/go-storefront/pkg/jitter"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
)

// SessionSweeper периодически завершает простаивающие сессии вместе с их корзинами.
type SessionSweeper struct {
	sessions SessionRepository
	interval time.Duration
	logger   logger.Logger
	now      func() time.Time

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewSessionSweeper(sessions SessionRepository, interval time.Duration, logger logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start запускает фоновый цикл очистки. Каждый следующий проход планируется
// через interval с небольшим случайным запасом. Повторный вызов и вызов после Stop ничего не делают.
func (s *SessionSweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.run(ctx)
}

func (s *SessionSweeper) run(ctx context.Context) {
	defer close(s.done)

	timer := time.NewTimer(jitter.Duration(s.interval, jitter.DefaultFactor))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			if n := s.sessions.Sweep(ctx, s.now()); n > 0 {
				s.logger.Infof("expired %d session(s)", n)
			}
			timer.Reset(jitter.Duration(s.interval, jitter.DefaultFactor))
		}
	}
}

// Stop останавливает цикл и ждёт его завершения либо отмены ctx.
func (s *SessionSweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		if s.cancel != nil {
			s.cancel()
		} else {
			close(s.done)
		}
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
