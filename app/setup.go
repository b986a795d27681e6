package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/studytrack/studytrack-api/api"
	"github.com/studytrack/studytrack-api/config"
	"github.com/studytrack/studytrack-api/database"
	"github.com/studytrack/studytrack-api/router"
	"github.com/studytrack/studytrack-api/services"
	"github.com/studytrack/studytrack-api/services/cron"
	"github.com/studytrack/studytrack-api/services/storage"
	"github.com/studytrack/studytrack-api/utils/auth"
	"github.com/studytrack/studytrack-api/utils/cache"
	applog "github.com/studytrack/studytrack-api/utils/logger"
	"github.com/studytrack/studytrack-api/utils/middleware"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	env, err := config.Get()
	if err != nil {
		return err
	}

	lg, err := applog.New(env.GO_ENV)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer lg.Sync()

	// Initialize GORM database connection
	store, err := database.StartGORM(env, lg)
	if err != nil {
		lg.Error("Check whether the database is running and DB_* / DATABASE_URL are correct")
		return err
	}

	if err := store.Init(); err != nil {
		lg.Error("Failed to initialize database tables")
		return err
	}

	if env.UsesInsecureSecret() {
		lg.Warn("JWT_SECRET is not set, tokens are signed with the built-in development secret")
	}

	// Cron jobs are on unless CRON_ENABLED=false
	var cronManager *cron.CronManager
	if env.CRON_ENABLED {
		cronManager = cron.NewCronManager(store.GetDB(), lg)
		if err := cronManager.Start(); err != nil {
			// Don't fail the app, just log the warning
			lg.Warn("Failed to start cron jobs", "error", err)
			cronManager = nil
		}
	}

	// Redis backs login lockouts; without it they are disabled
	var redisCache *cache.RedisCache
	if env.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(env.REDIS_URL)
		if err != nil {
			lg.Warn("Failed to connect to Redis, brute force protection disabled", "error", err)
			redisCache = nil
		}
	}

	// Object storage is optional; documents then resolve to their stored file_url
	var objectStore services.ObjectStore
	if cfg, ok := storage.ConfigFromEnv(env); ok {
		client, err := storage.NewClient(cfg)
		if err != nil {
			lg.Warn("Failed to configure object storage, presigned downloads disabled", "error", err)
		} else {
			objectStore = client
			lg.Info("Object storage configured", "bucket", cfg.Bucket)
		}
	}

	// Defer closing DB, Redis and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if redisCache != nil {
			_ = redisCache.Close()
		}
		_ = store.Close()
	}()

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: env.JWT_SECRET,
		Expiry: env.JWT_EXPIRY,
		Issuer: env.JWT_ISSUER,
	})

	server := api.NewAPIServer(fmt.Sprintf(":%d", env.PORT), store, lg)

	router.SetupRoutes(server.GetEngine(), router.Dependencies{
		Store:       store,
		JWTManager:  jwtManager,
		Log:         lg,
		Security:    middleware.DefaultSecurityConfig(),
		BruteForce:  middleware.NewBruteForceProtection(redisCache),
		ObjectStore: objectStore,
		RequireAuth: env.REQUIRE_AUTH,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		lg.Info("Received shutdown signal", "signal", sig.String())
	}

	return server.Shutdown()
}
