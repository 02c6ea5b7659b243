package cfg

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logger.Logger {
	return logger.New(io.Discard, slog.LevelError)
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"HTTP_PORT", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "KEEP_ALIVE",
		"CATALOG_BASE_URL", "CATALOG_TIMEOUT",
		"SESSION_COOKIE_NAME", "SESSION_TTL", "SESSION_SWEEP_INTERVAL", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	c, err := Load(testLogger())
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, 5*time.Second, c.Http.ReadTimeout)
	assert.Equal(t, "https://dummyjson.com", c.Catalog.BaseURL)
	assert.Zero(t, c.Catalog.Timeout)
	assert.Equal(t, "storefront_session", c.Session.CookieName)
	assert.Equal(t, 30*time.Minute, c.Session.TTL)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CATALOG_BASE_URL", "http://catalog.local:8000")
	t.Setenv("CATALOG_TIMEOUT", "3s")
	t.Setenv("SESSION_TTL", "5m")

	c, err := Load(testLogger())
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Http.Port)
	assert.Equal(t, "http://catalog.local:8000", c.Catalog.BaseURL)
	assert.Equal(t, 3*time.Second, c.Catalog.Timeout)
	assert.Equal(t, 5*time.Minute, c.Session.TTL)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"HTTP_PORT":              "http",
		"HTTP_READ_TIMEOUT":      "soon",
		"CATALOG_BASE_URL":       "dummyjson",
		"SESSION_TTL":            "-1m",
		"SESSION_SWEEP_INTERVAL": "0s",
		"SHUTDOWN_TIMEOUT":       "later",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(key, value)

			_, err := Load(testLogger())
			require.Error(t, err)
			assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
		})
	}
}
