package usecase

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/google/uuid"
)

// StorefrontUseCase монтирует представления на каждый запрос и связывает их с корзиной сессии.
type StorefrontUseCase struct {
	catalog  CatalogInfra
	sessions SessionRepository
	notifier Notifier
	logger   logger.Logger
}

func NewStorefrontUC(catalog CatalogInfra, sessions SessionRepository, notifier Notifier, logger logger.Logger) *StorefrontUseCase {
	return &StorefrontUseCase{
		catalog:  catalog,
		sessions: sessions,
		notifier: notifier,
		logger:   logger,
	}
}

// StartSession возвращает живую сессию по значению cookie или создаёт новую с пустой корзиной.
func (s *StorefrontUseCase) StartSession(ctx context.Context, rawID string) (*SessionRes, error) {
	const op = "StorefrontUseCase.StartSession"

	if id, err := uuid.Parse(rawID); err == nil {
		if session, err := s.sessions.Get(ctx, id); err == nil {
			return &SessionRes{ID: session.ID}, nil
		}
	}

	session, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	s.logger.Debugf("session %s started", session.ID)

	return &SessionRes{ID: session.ID, Created: true}, nil
}

// ListProducts загружает список и применяет выбор категории, если он есть.
func (s *StorefrontUseCase) ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error) {
	const op = "StorefrontUseCase.ListProducts"

	view := NewProductListView(s.catalog, s.logger)
	view.Load(ctx)
	if err := stateErr(view.State()); err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Category != "" {
		view.HandleCategoryClick(req.Category)
	}

	return &ListProductsRes{
		Categories:     view.Categories(),
		ActiveCategory: view.ActiveCategory(),
		Products:       view.VisibleProducts(),
	}, nil
}

func (s *StorefrontUseCase) GetProduct(ctx context.Context, req *GetProductReq) (*ProductRes, error) {
	const op = "StorefrontUseCase.GetProduct"

	view := NewProductDetailView(req.ID, s.catalog, nil, s.notifier, s.logger)
	view.Load(ctx)
	if err := stateErr(view.State()); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, _ := view.State().value()
	return &ProductRes{Product: product}, nil
}

// AddToCart повторяет сценарий карточки товара: загрузка, выбор количества, добавление.
// Количество меньше 1 приводится к 1, больше domain.MaxQuantity отклоняется.
func (s *StorefrontUseCase) AddToCart(ctx context.Context, req *AddToCartReq) (*AddToCartRes, error) {
	const op = "StorefrontUseCase.AddToCart"

	if req.Quantity > domain.MaxQuantity {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	session, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	view := NewProductDetailView(req.ProductID, s.catalog, session.Cart, s.notifier, s.logger)
	view.Load(ctx)
	if err := stateErr(view.State()); err != nil {
		return nil, e.Wrap(op, err)
	}

	view.HandleQuantityChange(max(req.Quantity, 1) - view.Quantity())

	notification, err := view.HandleAddToCart(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &AddToCartRes{
		Notification: notification,
		Cart:         NewCartRes(session.Cart),
	}, nil
}

func (s *StorefrontUseCase) GetCart(ctx context.Context, sessionID uuid.UUID) (*CartRes, error) {
	const op = "StorefrontUseCase.GetCart"

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartRes(session.Cart), nil
}

// UpdateCartItem заменяет количество позиции. Корзина не ограничивает значение, поэтому проверка здесь.
func (s *StorefrontUseCase) UpdateCartItem(ctx context.Context, req *UpdateCartItemReq) (*CartRes, error) {
	const op = "StorefrontUseCase.UpdateCartItem"

	if req.Quantity < 1 || req.Quantity > domain.MaxQuantity {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	session, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	session.Cart.UpdateQuantity(req.ProductID, req.Quantity)
	return NewCartRes(session.Cart), nil
}

func (s *StorefrontUseCase) RemoveCartItem(ctx context.Context, req *RemoveCartItemReq) (*CartRes, error) {
	const op = "StorefrontUseCase.RemoveCartItem"

	session, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	session.Cart.RemoveFromCart(req.ProductID)
	return NewCartRes(session.Cart), nil
}

func (s *StorefrontUseCase) ClearCart(ctx context.Context, sessionID uuid.UUID) (*CartRes, error) {
	const op = "StorefrontUseCase.ClearCart"

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	session.Cart.ClearCart()
	return NewCartRes(session.Cart), nil
}
