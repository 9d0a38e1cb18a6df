package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mentorportal/internal/logger"
)

// PasswordHasher is a one-way hash with verification.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	logger *logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, hasher PasswordHasher, logger *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
		now:    time.Now,
	}
}

type CreateInput struct {
	Username string
	Password string
	Email    string
}

// CreateAdmin registers a new admin. Uniqueness is a lookup followed by an
// insert, so two concurrent calls for one username can both succeed.
func (s *Service) CreateAdmin(ctx context.Context, in CreateInput) (*Account, error) {
	username := NormalizeUsername(in.Username)
	if username == "" || in.Password == "" {
		return nil, ErrMissingCredentials
	}

	s.logger.Debug("Admin service: creating admin", "username", username)

	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		s.logger.Info("Admin service: admin already exists", "username", username)
		return nil, ErrAdminExists
	}
	if !errors.Is(err, ErrNotFound) {
		s.logger.Error("Admin service: failed to look up admin",
			"username", username,
			"error", err.Error())
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error("Admin service: failed to hash password",
			"username", username,
			"error", err.Error())
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		Username:     username,
		PasswordHash: hash,
		Email:        strings.TrimSpace(in.Email),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		s.logger.Error("Admin service: failed to create admin",
			"username", username,
			"error", err.Error())
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Info("Admin service: admin created",
		"username", username,
		"id", account.ID)

	return account, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords both
// return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*Profile, error) {
	username = NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		s.logger.Info("Admin service: login for unknown admin", "username", username)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Error("Admin service: failed to look up admin",
			"username", username,
			"error", err.Error())
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !s.hasher.Check(password, account.PasswordHash) {
		s.logger.Info("Admin service: password mismatch", "username", username)
		return nil, ErrInvalidCredentials
	}

	profile := account.Profile()
	return &profile, nil
}
