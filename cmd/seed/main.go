package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"

	"mentorportal/internal/config"
	"mentorportal/internal/docstore"
	"mentorportal/internal/domain/admin"
	"mentorportal/internal/logger"
	"mentorportal/internal/pkg/password"
)

// seed registers the bootstrap admin from ADMIN_USERNAME / ADMIN_PASSWORD / ADMIN_EMAIL.
// An existing admin with the same username is left untouched.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New(0).Fatal("failed to load config", "error", err.Error())
	}
	log := logger.New(cfg.LogLevel)

	stores := docstore.NewAccessor(docstore.OpenerFor(cfg, log))
	defer stores.Close()

	svc := admin.NewService(
		admin.NewRepository(stores),
		password.NewHasher(cfg.BcryptCost),
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	account, err := svc.CreateAdmin(ctx, admin.CreateInput{
		Username: os.Getenv("ADMIN_USERNAME"),
		Password: os.Getenv("ADMIN_PASSWORD"),
		Email:    os.Getenv("ADMIN_EMAIL"),
	})
	switch {
	case errors.Is(err, admin.ErrAdminExists):
		log.Info("admin already exists, nothing to do")
	case errors.Is(err, admin.ErrMissingCredentials):
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	case err != nil:
		log.Fatal("failed to seed admin", "error", err.Error())
	default:
		log.Info("admin seeded", "id", account.ID, "username", account.Username)
	}
}
