package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid id", e.Wrap("op", e.ErrInvalidProductID), http.StatusBadRequest, e.ErrInvalidProductID.Error()},
		{"invalid quantity", e.Wrap("op", e.ErrInvalidQuantity), http.StatusBadRequest, e.ErrInvalidQuantity.Error()},
		{"invalid body", e.ErrInvalidBody, http.StatusBadRequest, e.ErrInvalidBody.Error()},
		{"no session", e.ErrSessionNotFound, http.StatusBadRequest, e.ErrSessionNotFound.Error()},
		{
			"view not found",
			e.Wrap("op", &usecase.ViewError{Message: usecase.DetailLoadErrorMessage, Err: e.ErrProductNotFound}),
			http.StatusNotFound,
			usecase.DetailLoadErrorMessage,
		},
		{
			"view fetch failed",
			&usecase.ViewError{Message: usecase.ListLoadErrorMessage, Err: e.ErrFetchFailed},
			http.StatusBadGateway,
			usecase.ListLoadErrorMessage,
		},
		{"bare fetch failed", e.ErrFetchFailed, http.StatusBadGateway, e.ErrFetchFailed.Error()},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, e.ErrInternalServerError.Error()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestDecodeQuantity(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		allowEmpty bool
		want       int
		wantErr    bool
	}{
		{name: "value", body: `{"quantity": 3}`, want: 3},
		{name: "negative passes through", body: `{"quantity": -2}`, allowEmpty: true, want: -2},
		{name: "empty body allowed", body: "", allowEmpty: true, want: 1},
		{name: "missing field allowed", body: `{}`, allowEmpty: true, want: 1},
		{name: "empty body rejected", body: "", wantErr: true},
		{name: "missing field rejected", body: `{}`, wantErr: true},
		{name: "malformed", body: `{"quantity":`, allowEmpty: true, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			got, err := decodeQuantity(r, tc.allowEmpty)
			if tc.wantErr {
				require.ErrorIs(t, err, e.ErrInvalidBody)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLogError(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		level string
	}{
		{"client error", e.Wrap("op", e.ErrInvalidQuantity), `"level":"WARN"`},
		{"server error", errors.New("boom"), `"level":"ERROR"`},
		{"view failure already logged", e.Wrap("op", &usecase.ViewError{Message: usecase.DetailLoadErrorMessage, Err: e.ErrProductNotFound}), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logError(logger.New(&buf, slog.LevelDebug), tc.err)

			if tc.level == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tc.level)
		})
	}
}
