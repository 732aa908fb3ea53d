package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user; a taken email yields entities.ErrUserAlreadyExists
	Create(ctx context.Context, user *entities.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint) (*entities.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// List returns every user, newest first
	List(ctx context.Context) ([]*entities.User, error)
}
