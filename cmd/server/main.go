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
	"go.uber.org/zap"

	"nexus-backend-go/internal/config"
	"nexus-backend-go/internal/db"
	httpapi "nexus-backend-go/internal/http"
	"nexus-backend-go/internal/logging"
	"nexus-backend-go/internal/migrations"
	"nexus-backend-go/internal/services"
	"nexus-backend-go/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db", zap.Error(err))
	}
	if err := migrations.Apply(database, logger); err != nil {
		logger.Fatal("migrations", zap.Error(err))
	}
	if version, err := migrations.Version(database); err == nil {
		logger.Info("schema ready", zap.Int64("version", version))
	}
	st := store.New(database)
	defer func() { _ = st.Close() }()

	var media services.MediaStore = services.DisabledMediaStore{}
	if cfg.MediaEnabled() {
		cld, err := services.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logger.Fatal("media", zap.Error(err))
		}
		media = cld
	} else {
		logger.Warn("cloudinary credentials missing, uploads are disabled")
	}

	server := httpapi.NewServer(st, cfg, media, logger)
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	httpServer.RegisterOnShutdown(server.Close)

	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr()), zap.String("driver", cfg.DatabaseDriver))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
