package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context) (*domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Sweep(ctx context.Context, now time.Time) int
}
