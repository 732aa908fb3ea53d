package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-scheduler/errors"
	"github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/common"
	minutesDTO "github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/minutes"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/minutes"
)

// Minutes handles meeting minutes requests
type Minutes struct {
	minutesService minutes.Service
}

// NewMinutes creates a new minutes handler
func NewMinutes(minutesService minutes.Service) *Minutes {
	return &Minutes{minutesService: minutesService}
}

// Create godoc
// @Summary      Add meeting minutes
// @Tags         meeting-minutes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      minutesDTO.CreateMinutesRequest  true  "Minutes"
// @Success      201   {object}  common.MessageResponse
// @Failure      400   {object}  common.ErrorResponse
// @Router       /api/meeting-minutes [post]
func (h *Minutes) Create(c echo.Context) error {
	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return errors.ErrUnauthenticated()
	}

	var req minutesDTO.CreateMinutesRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	if _, err := h.minutesService.Create(c.Request().Context(), callerID, minutes.CreateInput{
		Summary:     req.Summary,
		Decisions:   req.Decisions,
		ActionItems: req.ActionItems,
		Attendees:   req.Attendees,
		CreatedBy:   req.CreatedBy,
	}); err != nil {
		return toAppError(err, "Failed to save minutes")
	}

	return c.JSON(http.StatusCreated, common.MessageResponse{Message: "Meeting minutes added successfully"})
}

// List godoc
// @Summary      List meeting minutes
// @Tags         meeting-minutes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entities.MeetingMinutes
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/meeting-minutes/all [get]
func (h *Minutes) List(c echo.Context) error {
	list, err := h.minutesService.List(c.Request().Context())
	if err != nil {
		return toAppError(err, "Failed to fetch minutes")
	}
	return c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary      Get meeting minutes
// @Tags         meeting-minutes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Minutes ID"
// @Success      200  {object}  entities.MeetingMinutes
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/meeting-minutes/{id} [get]
func (h *Minutes) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	found, err := h.minutesService.Get(c.Request().Context(), id)
	if err != nil {
		return toAppError(err, "Failed to fetch minutes")
	}
	return c.JSON(http.StatusOK, found)
}
