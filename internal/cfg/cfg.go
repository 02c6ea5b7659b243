package cfg

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
)

type Config struct {
	Http            *HTTPConfig
	Catalog         *CatalogCfg
	Session         *SessionCfg
	ShutdownTimeout time.Duration
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type CatalogCfg struct {
	BaseURL string        // Адрес удалённого каталога, без завершающего слэша
	Timeout time.Duration // 0 — без таймаута, запрос ограничен только контекстом
}

type SessionCfg struct {
	CookieName    string
	TTL           time.Duration // Время простоя, после которого сессия и её корзина удаляются
	SweepInterval time.Duration
}

// Load загружает конфигурацию из окружения (и .env, если он есть) и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warnf("failed to read .env: %v", err)
		}
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	session, err := loadSessionCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		log.Errorf(err, "invalid SHUTDOWN_TIMEOUT")
		return nil, e.Wrap("SHUTDOWN_TIMEOUT", err)
	}

	return &Config{
		Http:            http,
		Catalog:         catalog,
		Session:         session,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		log.Errorf(err, "invalid HTTP_PORT")
		return nil, e.Wrap("HTTP_PORT", e.ErrIncorrectEnvVariable)
	}

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, e.Wrap("HTTP_READ_TIMEOUT", err)
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, e.Wrap("HTTP_WRITE_TIMEOUT", err)
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, e.Wrap("KEEP_ALIVE", err)
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	const defaultBaseURL = "https://dummyjson.com"

	baseURL := getEnvOrDefault("CATALOG_BASE_URL", defaultBaseURL)
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		log.Errorf(err, "invalid CATALOG_BASE_URL: %q", baseURL)
		return nil, e.Wrap("CATALOG_BASE_URL", e.ErrIncorrectEnvVariable)
	}

	timeout, err := parseDurationEnv("CATALOG_TIMEOUT", 0)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_TIMEOUT")
		return nil, e.Wrap("CATALOG_TIMEOUT", err)
	}

	return &CatalogCfg{
		BaseURL: baseURL,
		Timeout: timeout,
	}, nil
}

func loadSessionCfg(log logger.Logger) (*SessionCfg, error) {
	const (
		defaultCookieName    = "storefront_session"
		defaultTTL           = 30 * time.Minute
		defaultSweepInterval = time.Minute
	)

	ttl, err := parseDurationEnv("SESSION_TTL", defaultTTL)
	if err != nil || ttl <= 0 {
		log.Errorf(err, "invalid SESSION_TTL")
		return nil, e.Wrap("SESSION_TTL", e.ErrIncorrectEnvVariable)
	}

	sweepInterval, err := parseDurationEnv("SESSION_SWEEP_INTERVAL", defaultSweepInterval)
	if err != nil || sweepInterval <= 0 {
		log.Errorf(err, "invalid SESSION_SWEEP_INTERVAL")
		return nil, e.Wrap("SESSION_SWEEP_INTERVAL", e.ErrIncorrectEnvVariable)
	}

	return &SessionCfg{
		CookieName:    getEnvOrDefault("SESSION_COOKIE_NAME", defaultCookieName),
		TTL:           ttl,
		SweepInterval: sweepInterval,
	}, nil
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return d, nil
}
