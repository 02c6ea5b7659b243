package e

import "fmt"

var (
	// Ошибки удалённого каталога
	ErrFetchFailed     = fmt.Errorf("catalog fetch failed")
	ErrProductNotFound = fmt.Errorf("product not found")

	// Ошибки состояния представлений
	ErrProductNotLoaded = fmt.Errorf("product is not loaded")
	ErrSessionNotFound  = fmt.Errorf("session not found")
	ErrCartUnavailable  = fmt.Errorf("view has no cart")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidProductID = fmt.Errorf("invalid product id")
	ErrInvalidQuantity  = fmt.Errorf("quantity must be between 1 and 9999")
	ErrInvalidBody      = fmt.Errorf("invalid request body")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
