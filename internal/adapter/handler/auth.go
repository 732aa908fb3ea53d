package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-scheduler/errors"
	authDTO "github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/auth"
	"github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-scheduler/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/auth"
	ucErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService  auth.Service
	secureCookie bool
}

// NewAuth creates a new auth handler. secureCookie marks the token cookie
// Secure and should be set when served over HTTPS.
func NewAuth(authService auth.Service, secureCookie bool) *Auth {
	return &Auth{
		authService:  authService,
		secureCookie: secureCookie,
	}
}

// Register godoc
// @Summary      Register a user
// @Description  Creates an account with the User role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authDTO.RegisterRequest  true  "Account"
// @Success      200   {object}  common.MessageResponse
// @Failure      400   {object}  common.ErrorResponse
// @Router       /api/auth/register [post]
func (h *Auth) Register(c echo.Context) error {
	var req authDTO.RegisterRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	_, err := h.authService.Register(c.Request().Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if stdErrors.Is(err, ucErrors.ErrEmailTaken) {
			return errors.ErrUserAlreadyExists(req.Email)
		}
		return toAppError(err, "Failed to register user")
	}

	return c.JSON(http.StatusOK, common.MessageResponse{Message: "User registered!"})
}

// Login godoc
// @Summary      Sign in
// @Description  Checks email and password and returns a signed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authDTO.LoginRequest  true  "Credentials"
// @Success      200   {object}  authDTO.LoginResponse
// @Failure      400   {object}  common.ErrorResponse
// @Router       /api/auth/login [post]
func (h *Auth) Login(c echo.Context) error {
	var req authDTO.LoginRequest
	if err := bindAndValidate(c, &req, "Missing email or password"); err != nil {
		return err
	}

	out, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if stdErrors.Is(err, ucErrors.ErrMissingFields) {
			return errors.ErrInvalidArgument("Missing email or password")
		}
		return toAppError(err, "Failed to sign in")
	}

	setTokenCookie(c, out.Token, int(out.ExpiresIn.Seconds()), h.secureCookie)
	return c.JSON(http.StatusOK, presenter.ToLoginResponse(out))
}

// Logout godoc
// @Summary      Sign out
// @Description  Revokes the current token until it would have expired
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.MessageResponse
// @Failure      401  {object}  common.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *Auth) Logout(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return errors.ErrUnauthenticated()
	}

	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return toAppError(err, "Failed to logout")
	}

	clearTokenCookie(c)
	return c.JSON(http.StatusOK, common.MessageResponse{Message: "Logged out"})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authDTO.UserResponse
// @Failure      401  {object}  common.ErrorResponse
// @Router       /api/auth/me [get]
func (h *Auth) Me(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return errors.ErrUnauthenticated()
	}

	user, err := h.authService.Me(c.Request().Context(), userID)
	if err != nil {
		if stdErrors.Is(err, ucErrors.ErrUserNotFound) {
			return errors.ErrNotFound("User")
		}
		return toAppError(err, "Failed to get user")
	}

	return c.JSON(http.StatusOK, presenter.ToUserResponse(user))
}
