package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/stagehype-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres/audit"
	commentrepo "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres/comment"
	donationrepo "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres/donation"
	filmrepo "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres/film"
	tokenrepo "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/stagehype-backend/internal/auth"
	"github.com/heartmarshall/stagehype-backend/internal/config"
	"github.com/heartmarshall/stagehype-backend/internal/metrics"
	authsvc "github.com/heartmarshall/stagehype-backend/internal/service/auth"
	"github.com/heartmarshall/stagehype-backend/internal/service/catalog"
	"github.com/heartmarshall/stagehype-backend/internal/service/comment"
	"github.com/heartmarshall/stagehype-backend/internal/service/ledger"
	usersvc "github.com/heartmarshall/stagehype-backend/internal/service/user"
	"github.com/heartmarshall/stagehype-backend/internal/transport/loader"
	"github.com/heartmarshall/stagehype-backend/internal/transport/middleware"
	"github.com/heartmarshall/stagehype-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires repositories, services and HTTP handlers, and serves
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Repositories
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	films := filmrepo.New(pool)
	donations := donationrepo.New(pool)
	comments := commentrepo.New(pool)
	audit := auditrepo.New(pool)

	m := metrics.New()
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services
	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	catalogService := catalog.NewService(logger, films, users, audit, txm)
	ledgerService := ledger.NewService(logger, donations, users, catalogService, m, cfg.Ledger)
	commentService := comment.NewService(logger, comments, films)
	userService := usersvc.NewService(logger, users, audit, txm)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, middleware.WithRejectObserver(m))
	defer limiter.Stop()

	listLimits := rest.ListLimits{Default: cfg.Ledger.ListLimit, Max: cfg.Ledger.MaxListLimit}

	deps := rest.RouterDeps{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.HealthCheck{Name: "database", Critical: true, Check: pool.Ping},
			rest.HealthCheck{Name: "schema", Check: postgres.SchemaCheck(pool)},
		),
		Auth:          rest.NewAuthHandler(authService, logger),
		Donation:      rest.NewDonationHandler(ledgerService, logger, listLimits),
		Film:          rest.NewFilmHandler(catalogService, logger),
		Comment:       rest.NewCommentHandler(commentService, logger),
		User:          rest.NewUserHandler(userService, logger),
		Identity:      middleware.Auth(authService),
		Loaders:       &loader.Repos{Film: films, User: users},
		AuthLimit:     limiter.Limit("auth", cfg.RateLimit.AuthPerMinute),
		DonationLimit: limiter.LimitPerUser("donations", cfg.RateLimit.DonationPerMinute),
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = middleware.Metrics(m)
		deps.MetricsPath = cfg.Metrics.Path
		deps.MetricsHandler = m.Handler()
	}

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(rest.NewRouter(deps))

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go cleanupTokensLoop(ctx, logger, authService, time.Hour)

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
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

type tokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int, error)
}

// cleanupTokensLoop periodically deletes expired and revoked refresh tokens.
func cleanupTokensLoop(ctx context.Context, logger *slog.Logger, svc tokenCleaner, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.CleanupExpiredTokens(ctx)
			if err != nil {
				logger.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
				continue
			}
			logger.DebugContext(ctx, "token cleanup", slog.Int("deleted", n))
		}
	}
}
