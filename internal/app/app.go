package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/auth"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/config"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/service/study"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/transport/middleware"
	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/transport/rest"
)

// Run is the application entry point for the serve command. It opens the
// configured store, applies migrations when enabled, wires the study service
// into the HTTP router and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database_driver", cfg.Database.Driver),
	)

	store, err := openStorage(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.close()

	if cfg.Database.MigrateOnStart {
		provider, err := store.migrator()
		if err != nil {
			return err
		}
		if err := migrateUp(ctx, provider, logger); err != nil {
			return err
		}
	}

	svc, err := store.newService(logger, cfg.SRS.Parameters(), study.Options{
		SessionTTL:  cfg.Study.SessionTTL,
		MaxSessions: cfg.Study.MaxSessions,
		QueueLimit:  cfg.Study.QueueLimit,
	})
	if err != nil {
		return fmt.Errorf("create study service: %w", err)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(cfg, logger, svc, store),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newHandler assembles the middleware chain around the router. Request ids,
// panic recovery and CORS apply to every route; token auth, request logging
// and rate limiting apply to /api/v1.
func newHandler(cfg *config.Config, logger *slog.Logger, svc *study.Service, store *storage) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	api := middleware.Chain(
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
		limiter.Limit(),
	)

	router := rest.NewRouter(
		rest.NewFlashcardHandler(svc, logger),
		rest.NewSessionHandler(svc, logger),
		rest.NewHealthHandler(rest.PingFunc(store.ping), store.driver, svc, Version),
		api,
	)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(router)
}
