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

	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/config"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/bootstrap"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	services, err := bootstrap.NewServices(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("storage init failed", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer func() { _ = services.Close() }()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "prompt-pronto-backend",
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		AccessKey:   cfg.Server.AccessKey,
		Services:    services,
		Log:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("storage", cfg.Storage.Driver),
			zap.String("provider", services.Generation.Provider()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("stopped")
}
