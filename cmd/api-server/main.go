package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fightcard/database"
	"fightcard/internal/config"
	"fightcard/internal/logging"
	"fightcard/internal/metrics"
	"fightcard/internal/microservices/http-api/handler"
	"fightcard/internal/microservices/http-api/repository"
	"fightcard/internal/microservices/http-api/router"
	"fightcard/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "api-server",
		Short:        "Fight card rating API",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), migrateCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			return database.MigrateUp(cfg.DatabaseURL, logger)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations (default 1 step)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid steps %q: %w", args[0], err)
				}
				steps = n
			}
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			return database.MigrateDown(cfg.DatabaseURL, steps, logger)
		},
	})
	return cmd
}

func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Database
	if cfg.RunMigrations {
		if err := database.MigrateUp(cfg.DatabaseURL, logger); err != nil {
			return err
		}
	}

	db, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// 2. Session store
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		// sessions degrade to 503 until redis comes back
		logger.Warn("redis_unreachable", "addr", cfg.RedisAddr(), "error", err)
	}

	// 3. Repositories
	userRepo := repository.NewUserRepository(db)
	fightRepo := repository.NewFightRepo(db)
	eventRepo := repository.NewEventRepo(db)
	ratingRepo := repository.NewRatingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	sessionStore := repository.NewRedisSessionStore(rdb)

	// 4. Services
	sessions := service.NewSessionService(sessionStore, cfg.JWTSecret, cfg.SessionTTL)
	authService := service.NewAuthService(userRepo, sessions)
	fightService := service.NewFightService(fightRepo, eventRepo)
	eventService := service.NewEventService(eventRepo)
	ratingService := service.NewRatingService(ratingRepo, fightRepo)
	commentService := service.NewCommentService(commentRepo, fightRepo)

	// 5. Handlers
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(authService, cfg.SessionTTL, cfg.SessionCookieSecure),
		Fight:   handler.NewFightHandler(fightService),
		Event:   handler.NewEventHandler(eventService),
		Rating:  handler.NewRatingHandler(ratingService),
		Comment: handler.NewCommentHandler(commentService),
		Health: handler.NewHealthHandler(map[string]handler.HealthCheck{
			"database": sqlDB.PingContext,
			"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}),
	}

	var m *metrics.Metrics
	if cfg.PrometheusEnabled {
		m = metrics.New()
		m.RegisterDBStats(sqlDB)
	}

	engine := router.New(handlers, router.Options{
		Sessions:          sessions,
		WriteLimiter:      rate.NewLimiter(rate.Limit(cfg.WriteRateLimit), cfg.WriteRateBurst),
		CredentialLimiter: rate.NewLimiter(rate.Limit(cfg.CredentialRateLimit), cfg.CredentialRateBurst),
		Metrics:           m,
		Logger:            logger,
		CORSOrigins:       cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http_server_started", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("http_server_stopping")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("http_server_stopped")
	return nil
}
