package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scheduler/internal/adapter/repository"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-scheduler/pkg/config"
	"github.com/johnquangdev/meeting-scheduler/pkg/password"
)

// seed-admin creates the first Admin account. Registration always yields
// the User role and only an Admin can add users, so a fresh database
// needs one seeded by hand.
func main() {
	name := flag.String("name", envOr("ADMIN_NAME", "Administrator"), "display name")
	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email (or ADMIN_EMAIL)")
	plain := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password (or ADMIN_PASSWORD)")
	flag.Parse()

	if *email == "" || *plain == "" {
		log.Fatal("email and password are required")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	hash, err := password.Hash(*plain)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	admin := entities.NewUser(*name, *email, hash)
	admin.Role = entities.RoleAdmin

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := repository.NewUserRepository(db)
	if err := users.Create(ctx, admin); err != nil {
		if errors.Is(err, entities.ErrUserAlreadyExists) {
			logger.Warn("user already exists, nothing to do", zap.String("email", admin.Email))
			return
		}
		logger.Fatal("failed to create admin", zap.Error(err))
	}

	logger.Info("admin created", zap.Uint("id", admin.ID), zap.String("email", admin.Email))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
