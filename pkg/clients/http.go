package clients

import (
	"net"
	"net/http"
	"time"

	"github.com/DRSN-tech/go-storefront/internal/cfg"
)

// NewCatalogHTTPClient создаёт HTTP-клиент для удалённого каталога.
// Таймаут запроса задаётся только конфигурацией; по умолчанию его нет и запрос ограничен контекстом.
func NewCatalogHTTPClient(cfg *cfg.CatalogCfg) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}
}
