package http

import (
	"context"
	"net/http"
	"time"

	"github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/google/uuid"
)

type sessionCtxKey struct{}

// sessionFromCtx возвращает идентификатор сессии, установленный SessionMiddleware.
func sessionFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionCtxKey{}).(uuid.UUID)
	return id, ok
}

// SessionMiddleware привязывает запрос к сессии по cookie, создавая новую при необходимости,
// и продлевает cookie на каждый запрос.
func SessionMiddleware(storefrontUC usecase.StorefrontUC, cfg *cfg.SessionCfg, logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var raw string
			if c, err := r.Cookie(cfg.CookieName); err == nil {
				raw = c.Value
			}

			session, err := storefrontUC.StartSession(r.Context(), raw)
			if err != nil {
				logger.Errorf(err, "failed to start session")
				WriteError(w, err)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cfg.CookieName,
				Value:    session.ID.String(),
				Path:     "/",
				MaxAge:   int(cfg.TTL / time.Second),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionCtxKey{}, session.ID)))
		})
	}
}
