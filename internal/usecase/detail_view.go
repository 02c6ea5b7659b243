package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
)

const (
	DetailLoadErrorMessage = "Failed to load product. Please try again later."
	AddedToCartTitle       = "Added to cart"
)

// ProductDetailView — карточка одного товара с выбором количества.
// Без корзины (cart == nil) карточка доступна только для просмотра.
type ProductDetailView struct {
	id       string
	catalog  CatalogInfra
	cart     *domain.Cart
	notifier Notifier
	logger   logger.Logger
	quantity int
	state    ViewState[*domain.Product]
}

func NewProductDetailView(id string, catalog CatalogInfra, cart *domain.Cart, notifier Notifier, logger logger.Logger) *ProductDetailView {
	return &ProductDetailView{
		id:       id,
		catalog:  catalog,
		cart:     cart,
		notifier: notifier,
		logger:   logger,
		quantity: 1,
		state:    Loading[*domain.Product]{},
	}
}

func (v *ProductDetailView) State() ViewState[*domain.Product] {
	return v.state
}

func (v *ProductDetailView) Quantity() int {
	return v.quantity
}

// Load загружает товар по идентификатору из пути. Нечисловой идентификатор даёт ту же ошибку загрузки.
func (v *ProductDetailView) Load(ctx context.Context) {
	const op = "ProductDetailView.Load"

	v.state = Loading[*domain.Product]{}

	id, err := strconv.ParseInt(v.id, 10, 64)
	if err != nil {
		v.logger.Warnf("%s: invalid product id %q", op, v.id)
		v.state = Failed[*domain.Product]{Message: DetailLoadErrorMessage, Err: e.Wrap(op, e.ErrInvalidProductID)}
		return
	}

	product, err := v.catalog.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			v.logger.Warnf("%s: product %d not found", op, id)
		} else {
			v.logger.Errorf(e.Wrap(op, err), "failed to load product %d", id)
		}
		v.state = Failed[*domain.Product]{Message: DetailLoadErrorMessage, Err: e.Wrap(op, err)}
		return
	}

	v.state = Loaded[*domain.Product]{Value: product}
}

// HandleQuantityChange изменяет количество на delta, удерживая его в [1, domain.MaxQuantity].
func (v *ProductDetailView) HandleQuantityChange(delta int) {
	switch {
	case delta > 0 && delta >= domain.MaxQuantity-v.quantity:
		v.quantity = domain.MaxQuantity
	case delta < 0 && delta <= 1-v.quantity:
		v.quantity = 1
	default:
		v.quantity += delta
	}
}

// HandleAddToCart кладёт загруженный товар в корзину и возвращает уведомление для пользователя.
func (v *ProductDetailView) HandleAddToCart(ctx context.Context) (*domain.Notification, error) {
	const op = "ProductDetailView.HandleAddToCart"

	product, ok := v.state.value()
	if !ok || product == nil {
		return nil, e.Wrap(op, e.ErrProductNotLoaded)
	}
	if v.cart == nil {
		return nil, e.Wrap(op, e.ErrCartUnavailable)
	}

	v.cart.AddToCart(*product, v.quantity)

	return v.notifier.Notify(ctx, AddedToCartTitle, fmt.Sprintf("%d %s added to your cart", v.quantity, product.Title)), nil
}
