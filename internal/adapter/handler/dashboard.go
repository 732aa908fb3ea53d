package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Dashboard godoc
// @Summary      A user's meetings
// @Description  Meetings the user created or takes part in, oldest first. Non-admins may only ask for themselves.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "User ID"
// @Success      200     {array}   entities.MeetingSummary
// @Failure      403     {object}  common.ErrorResponse
// @Router       /api/dashboard/{userId} [get]
func (h *Meeting) Dashboard(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	meetings, err := h.meetingService.Dashboard(c.Request().Context(), caller, userID)
	if err != nil {
		return toAppError(err, "Failed to fetch meetings")
	}
	return c.JSON(http.StatusOK, meetings)
}

// Notifications godoc
// @Summary      Today's meetings for a user
// @Description  Meetings today that the user takes part in. Non-admins may only ask for themselves.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "User ID"
// @Success      200     {array}   entities.Meeting
// @Failure      403     {object}  common.ErrorResponse
// @Router       /api/notifications/{userId} [get]
func (h *Meeting) Notifications(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	meetings, err := h.meetingService.Notifications(c.Request().Context(), caller, userID)
	if err != nil {
		return toAppError(err, "Failed to fetch notifications")
	}
	return c.JSON(http.StatusOK, meetings)
}
