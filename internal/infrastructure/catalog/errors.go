package catalog

import (
	"fmt"
	"net/http"

	"github.com/DRSN-tech/go-storefront/pkg/e"
)

// FetchError описывает неудачный запрос к каталогу: сетевую ошибку, неуспешный статус или
// ошибку декодирования ответа. Всегда совпадает с e.ErrFetchFailed, а ответ 404 — ещё и с
// e.ErrProductNotFound.
type FetchError struct {
	Op         string
	URL        string
	StatusCode int // 0, если ответ не был получен
	Err        error
}

func (f *FetchError) Error() string {
	if f.StatusCode != 0 {
		return fmt.Sprintf("%s: GET %s: status %d: %v", f.Op, f.URL, f.StatusCode, f.Err)
	}

	return fmt.Sprintf("%s: GET %s: %v", f.Op, f.URL, f.Err)
}

func (f *FetchError) Unwrap() error {
	return f.Err
}

func (f *FetchError) Is(target error) bool {
	switch target {
	case e.ErrFetchFailed:
		return true
	case e.ErrProductNotFound:
		return f.StatusCode == http.StatusNotFound
	default:
		return false
	}
}
