package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jrmeyers92/client-portals/internal/api/handlers"
	"github.com/jrmeyers92/client-portals/internal/api/routes"
	"github.com/jrmeyers92/client-portals/internal/config"
	"github.com/jrmeyers92/client-portals/internal/database"
	"github.com/jrmeyers92/client-portals/internal/identity"
	"github.com/jrmeyers92/client-portals/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "github.com/jrmeyers92/client-portals/docs" // This is needed for swag
)

//	@title			Client Portals API
//	@version		1.0
//	@description	Backend API for the multi-tenant client portal: organization onboarding, principal roles and tenant lookups.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := routes.Dependencies{Checks: map[string]handlers.Pinger{}}

	// Object storage is optional: without it onboarding still works for requests without a logo
	store, err := storage.NewMinioStore(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Object storage not configured, logo uploads will fail")
	} else {
		if err := store.EnsureBucket(ctx, cfg.LogoFolder); err != nil {
			logrus.WithError(err).Warn("Failed to prepare storage bucket")
		}
		deps.Assets = store
		deps.Checks["storage"] = store
	}

	directory, err := identity.NewDirectory(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize identity directory:", err)
	}
	deps.Directory = directory

	if cfg.RepairQueueEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		deps.Repairs = identity.NewRedisRepairQueue(rdb, cfg.IdentityRepairStream)
		deps.Checks["redis"] = handlers.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})

		hostname, _ := os.Hostname()
		worker := identity.NewRepairWorker(rdb, directory, cfg.IdentityRepairStream, hostname,
			time.Duration(cfg.IdentityRepairIntervalSec)*time.Second)
		go func() {
			if err := worker.Run(ctx); err != nil {
				logrus.WithError(err).Error("Identity repair worker exited")
			}
		}()
	} else {
		logrus.Warn("REDIS_ADDR not set, identity drift will only be logged")
	}

	router := routes.SetupRoutes(db, cfg, deps)

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.CleanupTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
