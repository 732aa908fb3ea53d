package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
	"github.com/johnquangdev/meeting-scheduler/pkg/jwt"
	"github.com/johnquangdev/meeting-scheduler/pkg/password"
)

// AuthService handles registration, login and token checks
type AuthService struct {
	userRepo  repositories.UserRepository
	tokens    TokenManager
	blocklist TokenBlocklist
	logger    *zap.Logger
}

var _ Service = (*AuthService)(nil)

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	tokens TokenManager,
	blocklist TokenBlocklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokens:    tokens,
		blocklist: blocklist,
		logger:    logger,
	}
}

// Register creates a user with the default role
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, usecaseErrors.ErrMissingFields
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := entities.NewUser(name, email, hash)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, entities.ErrUserAlreadyExists) {
			return nil, usecaseErrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Login checks credentials and issues a signed token
func (s *AuthService) Login(ctx context.Context, email, plain string) (*LoginOutput, error) {
	email = strings.TrimSpace(email)
	if email == "" || plain == "" {
		return nil, usecaseErrors.ErrMissingFields
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	ok, err := password.Check(plain, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, usecaseErrors.ErrInvalidPassword
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginOutput{
		Token:     token,
		ExpiresIn: s.tokens.GetAccessExpiry(),
		User:      user,
	}, nil
}

// Logout revokes the token described by claims until it expires
func (s *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil || claims.TokenID() == "" {
		return usecaseErrors.ErrTokenInvalid
	}
	if err := s.blocklist.Revoke(ctx, claims.TokenID(), claims.Expiry()); err != nil {
		return fmt.Errorf("%w: revoke: %w", usecaseErrors.ErrBlocklistFailed, err)
	}
	s.logger.Info("token revoked", zap.Uint("user_id", claims.UserID), zap.String("jti", claims.TokenID()))
	return nil
}

// VerifyToken validates a raw or "Bearer " token and checks revocation
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, usecaseErrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrTokenInvalid, err)
	}

	if claims.TokenID() != "" {
		revoked, err := s.blocklist.IsRevoked(ctx, claims.TokenID())
		if err != nil {
			return nil, fmt.Errorf("%w: lookup: %w", usecaseErrors.ErrBlocklistFailed, err)
		}
		if revoked {
			return nil, usecaseErrors.ErrTokenRevoked
		}
	}

	return claims, nil
}

// Me loads the user behind an authenticated request
func (s *AuthService) Me(ctx context.Context, userID uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
