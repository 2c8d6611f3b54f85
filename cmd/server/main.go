package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"adoptamena_backend/internal/app/di"
	"adoptamena_backend/internal/app/router"
	animaladapters "adoptamena_backend/internal/feature/animal/adapters"
	animalhandler "adoptamena_backend/internal/feature/animal/transport/handler"
	animalusecase "adoptamena_backend/internal/feature/animal/usecase"
	authadapters "adoptamena_backend/internal/feature/auth/adapters"
	authhandler "adoptamena_backend/internal/feature/auth/transport/handler"
	authusecase "adoptamena_backend/internal/feature/auth/usecase"
	profileadapters "adoptamena_backend/internal/feature/profile/adapters"
	profilehandler "adoptamena_backend/internal/feature/profile/transport/handler"
	profileusecase "adoptamena_backend/internal/feature/profile/usecase"
	infradb "adoptamena_backend/internal/platform/db"
	platformhandler "adoptamena_backend/internal/platform/http/handler"
	jwtmw "adoptamena_backend/internal/platform/jwt"
	"adoptamena_backend/internal/platform/logger"
	"adoptamena_backend/internal/platform/mailer"
	"adoptamena_backend/internal/platform/metrics"
	infraredis "adoptamena_backend/internal/platform/redis"
	"adoptamena_backend/internal/shared/gormtx"
	"adoptamena_backend/internal/shared/ratelimiter"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	logger.Setup(logger.LoadConfig())

	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := loadServerConfig()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	readiness := map[string]platformhandler.Check{
		"db": func(ctx context.Context) error { return sqlDB.PingContext(ctx) },
	}

	// Redis is optional; without it tokens live in the DB and profiles are not cached.
	var rdb *redisv9.Client
	if redisCfg := infraredis.LoadConfig(); redisCfg.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, redisCfg); err != nil {
			slog.Warn("redis unavailable, running without cache", "error", err, "address", redisCfg.Addr())
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close redis client", "error", err)
				}
			}()
			readiness["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
	}

	jwtCfg := jwtmw.LoadConfig()
	if jwtCfg.Secret == "" {
		slog.Warn("JWT_SECRET is not set; logins will fail until a strong secret is configured")
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	verificationRepo := di.NewVerificationRepository(rdb, db)
	profileRepo := di.NewProfileRepository(rdb, db, cfg.ProfileCacheTTL)
	ownerRepo := profileadapters.NewOwnerGorm(db)
	animalRepo := animaladapters.NewAnimalGorm(db)

	// Usecase
	profileUC := profileusecase.NewProfileUsecase(profileRepo, ownerRepo)
	authUC := authusecase.NewAuthUsecase(
		userRepo,
		profileUC,
		gormtx.NewTransactor(db),
		verificationRepo,
		di.NewVerificationNotifier(mailer.LoadConfig()),
		jwtmw.NewGenerator(jwtCfg.Secret, jwtCfg.Expiration),
		cfg.VerificationTTL,
	)
	animalUC := animalusecase.NewAnimalUsecase(animalRepo)

	// Handler
	m := metrics.New()
	authH := authhandler.NewAuthHandler(authUC, m)
	profileH := profilehandler.NewProfileHandler(profileUC)
	animalH := animalhandler.NewAnimalHandler(animalUC)

	r := router.NewRouter(authH, profileH, animalH, router.Options{
		Metrics:         m,
		AuthRateLimiter: ratelimiter.NewRateLimiter(ratelimiter.PerMinuteFromEnv()),
		AllowedOrigins:  cfg.AllowedOrigins,
		ReadinessChecks: readiness,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
