package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-scheduler/errors"
	"github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/common"
	userDTO "github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/user"
	"github.com/johnquangdev/meeting-scheduler/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/http/middleware"
	ucErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/user"
)

// User handles user management requests
type User struct {
	userService user.Service
}

// NewUser creates a new user handler
func NewUser(userService user.Service) *User {
	return &User{userService: userService}
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   authDTO.UserResponse
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/users [get]
func (h *User) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return toAppError(err, "Failed to fetch users")
	}
	return c.JSON(http.StatusOK, presenter.ToUserResponses(users))
}

// Create godoc
// @Summary      Add a user
// @Description  Admin only. Role defaults to User.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userDTO.CreateUserRequest  true  "User"
// @Success      200   {object}  common.MessageResponse
// @Failure      400   {object}  common.ErrorResponse
// @Failure      403   {object}  common.ErrorResponse
// @Router       /api/users [post]
func (h *User) Create(c echo.Context) error {
	role, ok := middleware.RoleFromContext(c)
	if !ok {
		return errors.ErrUnauthenticated()
	}

	var req userDTO.CreateUserRequest
	if err := bindAndValidate(c, &req, "Email and password required"); err != nil {
		return err
	}

	_, err := h.userService.Create(c.Request().Context(), role, user.CreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case stdErrors.Is(err, ucErrors.ErrMissingFields):
			return errors.ErrInvalidArgument("Email and password required")
		case stdErrors.Is(err, ucErrors.ErrEmailTaken):
			return errors.ErrUserAlreadyExists(req.Email)
		}
		return toAppError(err, "Failed to add user")
	}

	return c.JSON(http.StatusOK, common.MessageResponse{Message: "User added successfully"})
}
