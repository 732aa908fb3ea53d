package middleware

import (
	"context"
	stdErrors "errors"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-scheduler/errors"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	ucErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
	"github.com/johnquangdev/meeting-scheduler/pkg/jwt"
)

// Echo context keys set by EchoAuth
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
	ContextKeyClaims = "claims"
	ContextKeyToken  = "token"
)

// TokenVerifier validates a raw or "Bearer " prefixed token
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*jwt.Claims, error)
}

// EchoAuth returns an Echo middleware that validates the token and stores
// the caller's id and role in the Echo context
func EchoAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := jwt.StripBearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				if cookie, err := c.Cookie("access_token"); err == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				return errors.ErrUnauthenticated().WithMessage("No token provided")
			}

			claims, err := verifier.VerifyToken(c.Request().Context(), token)
			if err != nil {
				switch {
				case stdErrors.Is(err, ucErrors.ErrTokenExpired):
					return errors.ErrTokenExpired()
				case stdErrors.Is(err, ucErrors.ErrTokenRevoked):
					return errors.ErrTokenRevoked()
				case stdErrors.Is(err, ucErrors.ErrTokenInvalid):
					return errors.ErrInvalidToken()
				case stdErrors.Is(err, ucErrors.ErrBlocklistFailed):
					return errors.ErrCacheFailed("token blocklist", err)
				default:
					return errors.ErrInternal(err)
				}
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyRole, entities.UserRole(claims.Role))
			c.Set(ContextKeyClaims, claims)
			c.Set(ContextKeyToken, token)

			return next(c)
		}
	}
}

// RequireRole rejects callers whose role is not listed with 403 and message
func RequireRole(message string, roles ...entities.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := RoleFromContext(c)
			if !ok {
				return errors.ErrUnauthenticated()
			}

			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return errors.ErrPermissionDenied(message)
		}
	}
}

// UserIDFromContext returns the authenticated user id
func UserIDFromContext(c echo.Context) (uint, bool) {
	id, ok := c.Get(ContextKeyUserID).(uint)
	return id, ok && id != 0
}

// RoleFromContext returns the authenticated user's role
func RoleFromContext(c echo.Context) (entities.UserRole, bool) {
	role, ok := c.Get(ContextKeyRole).(entities.UserRole)
	return role, ok
}

// ClaimsFromContext returns the verified token claims
func ClaimsFromContext(c echo.Context) (*jwt.Claims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*jwt.Claims)
	return claims, ok
}
