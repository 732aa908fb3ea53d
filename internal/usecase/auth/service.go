package auth

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/pkg/jwt"
)

// Service defines the interface for the auth use case
type Service interface {
	// Register creates a user with the default role
	Register(ctx context.Context, input RegisterInput) (*entities.User, error)

	// Login checks credentials and issues a signed token
	Login(ctx context.Context, email, password string) (*LoginOutput, error)

	// Logout revokes the token described by claims until it expires
	Logout(ctx context.Context, claims *jwt.Claims) error

	// VerifyToken validates a raw or "Bearer " token and checks revocation
	VerifyToken(ctx context.Context, token string) (*jwt.Claims, error)

	// Me loads the user behind an authenticated request
	Me(ctx context.Context, userID uint) (*entities.User, error)
}

// TokenManager signs and parses access tokens
type TokenManager interface {
	GenerateAccessToken(userID uint, role string) (string, error)
	ValidateAccessToken(token string) (*jwt.Claims, error)
	GetAccessExpiry() time.Duration
}

// TokenBlocklist remembers revoked token ids until they expire
type TokenBlocklist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RegisterInput represents input for registering a user
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginOutput is the token plus the signed-in user
type LoginOutput struct {
	Token     string
	ExpiresIn time.Duration
	User      *entities.User
}
