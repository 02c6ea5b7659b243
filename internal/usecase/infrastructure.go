package usecase

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
)

type CatalogInfra interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

type Notifier interface {
	Notify(ctx context.Context, title, description string) *domain.Notification
}
