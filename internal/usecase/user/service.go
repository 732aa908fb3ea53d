package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
	"github.com/johnquangdev/meeting-scheduler/pkg/password"
)

// Service defines the interface for user management
type Service interface {
	// List returns every user, newest first
	List(ctx context.Context) ([]*entities.User, error)

	// Create adds a user; only an Admin actor may do so
	Create(ctx context.Context, actorRole entities.UserRole, input CreateInput) (*entities.User, error)
}

// CreateInput represents input for adding a user
type CreateInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserService handles user management
type UserService struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

var _ Service = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*entities.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, actorRole entities.UserRole, input CreateInput) (*entities.User, error) {
	if actorRole != entities.RoleAdmin {
		return nil, usecaseErrors.ErrAdminOnly
	}

	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, usecaseErrors.ErrMissingFields
	}

	role := entities.RoleUser
	if input.Role != "" {
		role = entities.UserRole(input.Role)
		if !role.IsValid() {
			return nil, usecaseErrors.ErrInvalidRole
		}
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := entities.NewUser(strings.TrimSpace(input.Name), email, hash)
	user.Role = role
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, entities.ErrUserAlreadyExists) {
			return nil, usecaseErrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	s.logger.Info("user added", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}
