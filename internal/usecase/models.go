package usecase

import (
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SESSIONS

// SessionRes — результат привязки запроса к сессии.
type SessionRes struct {
	ID      uuid.UUID
	Created bool // true, если сессия (и пустая корзина) создана этим запросом
}

// PRODUCTS

// ListProductsReq — запрос списка товаров. Пустая категория — категория по умолчанию (первая).
type ListProductsReq struct {
	Category string
}

// ListProductsRes — отрисованное состояние списка товаров.
type ListProductsRes struct {
	Categories     []domain.Category
	ActiveCategory string
	Products       []domain.Product
}

// GetProductReq — запрос карточки товара; ID берётся из пути как есть.
type GetProductReq struct {
	ID string
}

type ProductRes struct {
	Product *domain.Product
}

// CART

type AddToCartReq struct {
	SessionID uuid.UUID
	ProductID string
	Quantity  int
}

type AddToCartRes struct {
	Notification *domain.Notification
	Cart         *CartRes
}

type UpdateCartItemReq struct {
	SessionID uuid.UUID
	ProductID int64
	Quantity  int
}

type RemoveCartItemReq struct {
	SessionID uuid.UUID
	ProductID int64
}

// CartRes — снимок корзины сессии.
type CartRes struct {
	Items         []domain.CartItem
	TotalQuantity int
	Subtotal      decimal.Decimal
}

// MAPPERS

func NewListProductsReq(category string) *ListProductsReq {
	return &ListProductsReq{Category: category}
}

func NewGetProductReq(id string) *GetProductReq {
	return &GetProductReq{ID: id}
}

func NewAddToCartReq(sessionID uuid.UUID, productID string, quantity int) *AddToCartReq {
	return &AddToCartReq{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewUpdateCartItemReq(sessionID uuid.UUID, productID int64, quantity int) *UpdateCartItemReq {
	return &UpdateCartItemReq{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewRemoveCartItemReq(sessionID uuid.UUID, productID int64) *RemoveCartItemReq {
	return &RemoveCartItemReq{
		SessionID: sessionID,
		ProductID: productID,
	}
}

func NewCartRes(cart *domain.Cart) *CartRes {
	return &CartRes{
		Items:         cart.Items(),
		TotalQuantity: cart.TotalQuantity(),
		Subtotal:      cart.Subtotal(),
	}
}
