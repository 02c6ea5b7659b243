package http

import (
	"net/http"
	"time"

	_ "github.com/DRSN-tech/go-storefront/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(storefrontUC usecase.StorefrontUC, sessionCfg *cfg.SessionCfg) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(r.logRequests)
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(SessionMiddleware(storefrontUC, sessionCfg, r.logger))

		prHandler := NewProductHandler(storefrontUC, r.logger)
		registerProductRoutes(v1, prHandler)

		cartHandler := NewCartHandler(storefrontUC, r.logger)
		registerCartRoutes(v1, cartHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Get("/{id}", prHandler.getProduct)
		pr.Post("/{id}/cart", prHandler.addToCart)
	})
}

func registerCartRoutes(router chi.Router, cartHandler *CartHandler) {
	router.Route("/cart", func(c chi.Router) {
		c.Get("/", cartHandler.getCart)
		c.Delete("/", cartHandler.clearCart)
		c.Patch("/items/{id}", cartHandler.updateItem)
		c.Delete("/items/{id}", cartHandler.removeItem)
	})
}

// logRequests пишет в лог метод, путь, код ответа и длительность каждого запроса.
func (r *Router) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, req)

		r.logger.Infof("%s %s %d %s request_id=%s",
			req.Method,
			req.URL.Path,
			ww.Status(),
			time.Since(start),
			middleware.GetReqID(req.Context()),
		)
	})
}
