// Command api runs the provider directory HTTP gateway.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opendirectory/providerdir/internal/config"
	"github.com/opendirectory/providerdir/internal/database"
	"github.com/opendirectory/providerdir/internal/handler"
	"github.com/opendirectory/providerdir/internal/logger"
	"github.com/opendirectory/providerdir/internal/middleware"
	"github.com/opendirectory/providerdir/internal/repository"
	"github.com/opendirectory/providerdir/internal/router"
	"github.com/opendirectory/providerdir/internal/server"
	"github.com/opendirectory/providerdir/internal/service"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 30 * time.Second

func main() {
	fallbackLog := zerolog.New(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		fallbackLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		fallbackLog.Fatal().Err(err).Msg("failed to initialize logger")
	}

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := database.Migrate(migrateCtx, log, cfg); err != nil {
		cancelMigrate()
		log.Fatal().Err(err).Msg("database migration failed")
	}
	cancelMigrate()

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, repos, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(srv, handlers, middlewares)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if loggerService != nil {
		loggerService.Shutdown(10 * time.Second)
	}

	log.Info().Msg("shutdown complete")
}
