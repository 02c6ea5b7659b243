package http

import (
	"net/http"

	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
)

type CartHandler struct {
	storefrontUC usecase.StorefrontUC
	logger       logger.Logger
}

func NewCartHandler(storefrontUC usecase.StorefrontUC, logger logger.Logger) *CartHandler {
	return &CartHandler{storefrontUC: storefrontUC, logger: logger}
}

// getCart
//
//	@Summary	Корзина текущей сессии
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFromCtx(r.Context())
	if !ok {
		c.writeError(w, e.ErrSessionNotFound)
		return
	}

	res, err := c.storefrontUC.GetCart(r.Context(), sessionID)
	if err != nil {
		c.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(res))
}

// updateItem
//
//	@Summary		Изменение количества позиции
//	@Description	Отсутствующая позиция не создаётся
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Идентификатор товара"
//	@Param			body	body		QuantityRequest	true	"Новое количество (1..9999)"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/cart/items/{id} [patch]
func (c *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFromCtx(r.Context())
	if !ok {
		c.writeError(w, e.ErrSessionNotFound)
		return
	}

	productID, err := parseProductIDParam(r)
	if err != nil {
		c.writeError(w, err)
		return
	}

	quantity, err := decodeQuantity(r, false)
	if err != nil {
		c.writeError(w, err)
		return
	}

	res, err := c.storefrontUC.UpdateCartItem(r.Context(), usecase.NewUpdateCartItemReq(sessionID, productID, quantity))
	if err != nil {
		c.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(res))
}

// removeItem
//
//	@Summary	Удаление позиции из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		id	path		int	true	"Идентификатор товара"
//	@Success	200	{object}	CartResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/cart/items/{id} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFromCtx(r.Context())
	if !ok {
		c.writeError(w, e.ErrSessionNotFound)
		return
	}

	productID, err := parseProductIDParam(r)
	if err != nil {
		c.writeError(w, err)
		return
	}

	res, err := c.storefrontUC.RemoveCartItem(r.Context(), usecase.NewRemoveCartItemReq(sessionID, productID))
	if err != nil {
		c.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(res))
}

// clearCart
//
//	@Summary	Очистка корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFromCtx(r.Context())
	if !ok {
		c.writeError(w, e.ErrSessionNotFound)
		return
	}

	res, err := c.storefrontUC.ClearCart(r.Context(), sessionID)
	if err != nil {
		c.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(res))
}

func (c *CartHandler) writeError(w http.ResponseWriter, err error) {
	logError(c.logger, err)
	WriteError(w, err)
}
