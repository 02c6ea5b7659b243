package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
)

// Client читает товары из удалённого каталога. Повторов и кэша нет, каждый вызов делает новый запрос.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

func NewClient(httpClient *http.Client, cfg *cfg.CatalogCfg, logger logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger.With("component", "catalog"),
	}
}

// ListProducts возвращает все товары каталога.
// limit=0 просит каталог отдать полный список одной страницей.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogClient.ListProducts"

	u := c.baseURL + "/products?" + url.Values{"limit": {"0"}}.Encode()

	var res productsResponse
	if err := c.getJSON(ctx, op, u, &res); err != nil {
		return nil, err
	}

	c.logger.Debugf("%s: fetched %d products", op, len(res.Products))
	return toArrDomain(res.Products), nil
}

// GetProduct возвращает товар по идентификатору.
func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogClient.GetProduct"

	u := c.baseURL + "/products/" + strconv.FormatInt(id, 10)

	var res productModel
	if err := c.getJSON(ctx, op, u, &res); err != nil {
		return nil, err
	}

	return toDomain(&res), nil
}

// getJSON выполняет GET и декодирует JSON-ответ в dst.
// Любая ошибка (сеть, статус, декодирование) возвращается как *FetchError.
func (c *Client) getJSON(ctx context.Context, op, u string, dst any) error {
	const maxErrorBody = 512

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &FetchError{Op: op, URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Op: op, URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &FetchError{
			Op:         op,
			URL:        u,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &FetchError{Op: op, URL: u, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
