package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	config "github.com/DRSN-tech/go-storefront/internal/cfg"
	v1Http "github.com/DRSN-tech/go-storefront/internal/delivery/v1/http"
	"github.com/DRSN-tech/go-storefront/internal/infrastructure/catalog"
	"github.com/DRSN-tech/go-storefront/internal/infrastructure/notify"
	"github.com/DRSN-tech/go-storefront/internal/repository/memory"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/clients"
	"github.com/DRSN-tech/go-storefront/pkg/closer"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	handler http.Handler
	httpSrv *v1Http.Server
	sweeper *usecase.SessionSweeper
	closer  *closer.Closer
}

// NewApp собирает зависимости приложения. Внешних подключений при старте нет:
// каталог опрашивается на каждый запрос, сессии живут в памяти процесса.
func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	catalogClient := catalog.NewClient(clients.NewCatalogHTTPClient(cfg.Catalog), cfg.Catalog, logger)
	sessionRepo := memory.NewSessionRepo(cfg.Session, logger)
	notifier := notify.NewToastNotifier(logger)

	storefrontUC := usecase.NewStorefrontUC(catalogClient, sessionRepo, notifier, logger)
	sweeper := usecase.NewSessionSweeper(sessionRepo, cfg.Session.SweepInterval, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(storefrontUC, cfg.Session)

	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: r,
		httpSrv: v1Http.NewServer(r, cfg.Http),
		sweeper: sweeper,
		closer:  closer.NewCloser(0),
	}, nil
}

// Handler возвращает корневой обработчик HTTP.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run запускает сервер и очистку сессий, блокируется до сигнала или ошибки сервера
// и выполняет graceful shutdown.
func (a *App) Run() error {
	a.sweeper.Start()
	a.closer.Add("session sweeper", a.sweeper.Stop)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	a.closer.Add("http server", a.httpSrv.Stop)

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown error")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}
