package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"nexus-backend-go/internal/config"
	"nexus-backend-go/internal/db"
	"nexus-backend-go/internal/logging"
	"nexus-backend-go/internal/migrations"
	"nexus-backend-go/internal/models"
	"nexus-backend-go/internal/services"
	"nexus-backend-go/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.LoadSeed()
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
	st := store.New(database)
	defer func() { _ = st.Close() }()

	if err := migrations.Apply(database, logger); err != nil {
		logger.Fatal("migrations", zap.Error(err))
	}
	if version, err := migrations.Version(database); err == nil {
		logger.Info("schema ready", zap.Int64("version", version))
	}

	hash, err := services.TokenService{}.HashPassword(cfg.AdminPassword)
	if err != nil {
		logger.Fatal("hash password", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := st.EnsureAdmin(ctx, &models.Admin{
		Email:        cfg.AdminEmail,
		Name:         cfg.AdminName,
		PasswordHash: hash,
	})
	if err != nil {
		logger.Fatal("seed admin", zap.Error(err))
	}
	if created {
		logger.Info("default admin created", zap.String("email", cfg.AdminEmail))
	} else {
		logger.Info("default admin already exists", zap.String("email", cfg.AdminEmail))
	}
}
