package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ibeloyar/chawp-vendor/internal/config"
	"github.com/ibeloyar/chawp-vendor/internal/notify"
	"github.com/ibeloyar/chawp-vendor/internal/repository/pg"
	"github.com/ibeloyar/chawp-vendor/internal/service"
	"github.com/ibeloyar/chawp-vendor/pgk/logger"
	"go.uber.org/zap"

	httpController "github.com/ibeloyar/chawp-vendor/internal/controller/http"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := pg.New(signalCtx, cfg.DatabaseURI, lg)
	if err != nil {
		return err
	}

	pushClient := notify.NewPushClient(cfg.PushFunctionURL, cfg.PushFunctionKey, nil)

	// NOTIFY_WORKERS=0 - отправляем прямо в запросе, без очереди
	var (
		notifier service.Notifier = pushClient
		pool     *notify.Pool
	)
	if cfg.NotifyWorkers > 0 {
		pool = notify.NewPool(pushClient, cfg.NotifyWorkers, cfg.NotifyQueueSize, lg)
		notifier = pool
	}

	router := chi.NewRouter()

	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	s := service.New(storage, notifier, cfg.TokenLifetime, cfg.SecretKey, lg)

	handlers := httpController.New(s, lg)
	router = httpController.InitRoutes(router, handlers, cfg.SecretKey)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}
	srv.RegisterOnShutdown(handlers.CloseLiveFeeds)

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	if pool != nil {
		if err := pool.Shutdown(ctx); err != nil {
			lg.Warnf("shutdown (notify pool) error: %v", err)
		}
	}

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
