package http

import (
	"errors"
	"net/http"

	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	storefrontUC usecase.StorefrontUC
	logger       logger.Logger
}

func NewProductHandler(storefrontUC usecase.StorefrontUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{storefrontUC: storefrontUC, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Загружает каталог, выводит категории и фильтрует товары по активной категории
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string				false	"Активная категория (по умолчанию первая)"
//	@Success		200			{object}	ProductListResponse
//	@Failure		502			{object}	ErrorResponse	"Каталог недоступен"
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	res, err := p.storefrontUC.ListProducts(r.Context(), usecase.NewListProductsReq(r.URL.Query().Get("category")))
	if err != nil {
		p.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductListResponse(res))
}

// getProduct
//
//	@Summary		Карточка товара
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор товара"
//	@Success		200	{object}	ProductResponse
//	@Failure		400	{object}	ErrorResponse	"Некорректный идентификатор"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Failure		502	{object}	ErrorResponse	"Каталог недоступен"
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	res, err := p.storefrontUC.GetProduct(r.Context(), usecase.NewGetProductReq(chi.URLParam(r, "id")))
	if err != nil {
		p.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(res.Product))
}

// addToCart
//
//	@Summary		Добавление товара в корзину
//	@Description	Количество меньше 1 приводится к 1, больше 9999 отклоняется. Возвращает уведомление и состояние корзины
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Идентификатор товара"
//	@Param			body	body		QuantityRequest	false	"Количество (по умолчанию 1)"
//	@Success		200		{object}	AddToCartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/products/{id}/cart [post]
func (p *ProductHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFromCtx(r.Context())
	if !ok {
		p.writeError(w, e.ErrSessionNotFound)
		return
	}

	quantity, err := decodeQuantity(r, true)
	if err != nil {
		p.writeError(w, err)
		return
	}

	res, err := p.storefrontUC.AddToCart(r.Context(), usecase.NewAddToCartReq(sessionID, chi.URLParam(r, "id"), quantity))
	if err != nil {
		p.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, AddToCartResponse{
		Notification: toNotificationResponse(res.Notification),
		Cart:         toCartResponse(res.Cart),
	})
}

func (p *ProductHandler) writeError(w http.ResponseWriter, err error) {
	logError(p.logger, err)
	WriteError(w, err)
}

// logError пишет 4xx как предупреждения, а 5xx как ошибки.
// Ошибки загрузки представлений уже записаны самим представлением.
func logError(log logger.Logger, err error) {
	var ve *usecase.ViewError
	if errors.As(err, &ve) {
		return
	}

	code, msg := ToHTTPResponse(err)
	if code >= http.StatusInternalServerError {
		log.Errorf(err, "%d %s", code, msg)
		return
	}

	log.Warnf("%d %s: %s", code, msg, err.Error())
}
