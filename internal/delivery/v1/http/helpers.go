package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse подбирает код ответа по ошибке. Для ошибок загрузки представлений сообщение
// берётся из представления, чтобы пользователь видел тот же текст, что и в интерфейсе.
func ToHTTPResponse(err error) (int, string) {
	msg := func(fallback error) string {
		var ve *usecase.ViewError
		if errors.As(err, &ve) && ve.Message != "" {
			return ve.Message
		}
		return fallback.Error()
	}

	switch {
	case errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, e.ErrInvalidProductID.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrInvalidBody):
		return http.StatusBadRequest, e.ErrInvalidBody.Error()
	case errors.Is(err, e.ErrSessionNotFound):
		return http.StatusBadRequest, e.ErrSessionNotFound.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, msg(e.ErrProductNotFound)
	case errors.Is(err, e.ErrFetchFailed):
		return http.StatusBadGateway, msg(e.ErrFetchFailed)
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseProductIDParam читает числовой идентификатор товара из пути.
func parseProductIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), e.ErrInvalidProductID)
	}

	return id, nil
}

// decodeQuantity читает тело {"quantity": n}. Пустое тело допускается, если allowEmpty.
func decodeQuantity(r *http.Request, allowEmpty bool) (int, error) {
	const maxBodySize = 1 << 10

	var req QuantityRequest
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req)
	switch {
	case errors.Is(err, io.EOF) && allowEmpty:
		return 1, nil
	case err != nil:
		return 0, e.Wrap(whereami.WhereAmI(), e.ErrInvalidBody)
	case req.Quantity == nil:
		if allowEmpty {
			return 1, nil
		}
		return 0, e.Wrap(whereami.WhereAmI(), e.ErrInvalidBody)
	}

	return *req.Quantity, nil
}
