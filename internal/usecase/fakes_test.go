package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/shopspring/decimal"
)

func testLogger() logger.Logger {
	return logger.New(io.Discard, slog.LevelError)
}

type notFoundErr struct{ id int64 }

func (n notFoundErr) Error() string { return fmt.Sprintf("status %d for product %d", http.StatusNotFound, n.id) }

func (n notFoundErr) Is(target error) bool {
	return target == e.ErrFetchFailed || target == e.ErrProductNotFound
}

// fakeCatalog отдаёт товары из памяти и считает вызовы.
type fakeCatalog struct {
	mu        sync.Mutex
	products  []domain.Product
	listErr   error
	listCalls int
	getCalls  int
}

func (f *fakeCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}

	return append([]domain.Product(nil), f.products...), nil
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.getCalls++
	for _, p := range f.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}

	return nil, notFoundErr{id: id}
}

type fakeNotifier struct {
	sent []*domain.Notification
}

func (f *fakeNotifier) Notify(ctx context.Context, title, description string) *domain.Notification {
	n := domain.NewNotification(title, description, time.Now())
	f.sent = append(f.sent, n)
	return n
}

func catalogWith(categories ...string) *fakeCatalog {
	products := make([]domain.Product, len(categories))
	for i, c := range categories {
		products[i] = domain.Product{
			ID:       int64(i + 1),
			Title:    fmt.Sprintf("Product %d", i+1),
			Price:    decimal.NewFromInt(int64(10 * (i + 1))),
			Category: c,
		}
	}

	return &fakeCatalog{products: products}
}
