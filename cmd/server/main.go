package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fcg-platform/users-svc/internal/api"
	"github.com/fcg-platform/users-svc/internal/api/handler"
	"github.com/fcg-platform/users-svc/internal/core/ports"
	"github.com/fcg-platform/users-svc/internal/core/service"
	"github.com/fcg-platform/users-svc/internal/infrastructure/config"
	"github.com/fcg-platform/users-svc/internal/infrastructure/db/mongo"
	"github.com/fcg-platform/users-svc/internal/infrastructure/db/redis"
	"github.com/fcg-platform/users-svc/internal/infrastructure/queue"
	"github.com/fcg-platform/users-svc/internal/infrastructure/secrets"
	"github.com/fcg-platform/users-svc/pkg/logger"
)

// @title        Users Service API
// @version      1.0
// @description  User management and authentication service.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// A .env file is a local convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	bootCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mongoClient, db, err := mongo.Connect(bootCtx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redis.Connect(bootCtx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	if err := mongo.EnsureAdminUser(bootCtx, db, cfg.Admin.Email, cfg.Admin.Password, log); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	// --- Secrets ---
	var remote ports.ParameterSource
	if cfg.UseSSM || !cfg.IsDevelopment() {
		src, err := secrets.NewSSMSource(bootCtx, log)
		if err != nil {
			log.Warn().Err(err).Msg("parameter store unavailable, falling back to local config")
		} else {
			remote = src
		}
	}
	resolver := secrets.NewResolver(remote, ports.JWTSecrets{
		Key:      cfg.JWT.Key,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	}, !cfg.IsDevelopment(), log)

	jwtSecrets, err := resolver.Resolve(bootCtx)
	if err != nil {
		log.Fatal().Err(err).Msg("jwt secrets incomplete")
	}

	// --- Services ---
	userRepo := mongo.NewUserRepository(db)
	eventRepo := mongo.NewEventRepository(db)

	dispatcher := queue.NewDispatcher(0, queue.NewAuditRecorder(log), log)
	dispatcher.Start(ctx)

	userService := service.NewAuditedUserService(
		service.NewUserService(userRepo, log),
		eventRepo,
		redis.NewSequenceAllocator(rdb),
		dispatcher,
		log,
	)
	authService := service.NewAuthService(userRepo, resolver, log)

	// --- HTTP ---
	e := api.NewRouter(api.RouterConfig{
		AuthHandler:   handler.NewAuthHandler(authService),
		UserHandler:   handler.NewUserHandler(userService),
		HealthHandler: handler.NewHealthHandler(db, rdb),
		Secrets:       jwtSecrets,
		Log:           log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
