package usecase

import (
	"context"

	"github.com/google/uuid"
)

type StorefrontUC interface {
	StartSession(ctx context.Context, rawID string) (*SessionRes, error)
	ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error)
	GetProduct(ctx context.Context, req *GetProductReq) (*ProductRes, error)
	AddToCart(ctx context.Context, req *AddToCartReq) (*AddToCartRes, error)
	GetCart(ctx context.Context, sessionID uuid.UUID) (*CartRes, error)
	UpdateCartItem(ctx context.Context, req *UpdateCartItemReq) (*CartRes, error)
	RemoveCartItem(ctx context.Context, req *RemoveCartItemReq) (*CartRes, error)
	ClearCart(ctx context.Context, sessionID uuid.UUID) (*CartRes, error)
}
