package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-scheduler/errors"
	"github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/common"
	meetingDTO "github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/meeting"
)

// Meeting handles meeting, dashboard and notification requests
type Meeting struct {
	meetingService meeting.Service
}

// NewMeeting creates a new meeting handler
func NewMeeting(meetingService meeting.Service) *Meeting {
	return &Meeting{meetingService: meetingService}
}

// actor returns the authenticated caller
func actor(c echo.Context) (meeting.Actor, error) {
	id, ok := middleware.UserIDFromContext(c)
	if !ok {
		return meeting.Actor{}, errors.ErrUnauthenticated()
	}
	role, _ := middleware.RoleFromContext(c)
	return meeting.Actor{ID: id, Role: role}, nil
}

// Create godoc
// @Summary      Record a meeting
// @Description  Stores the meeting with the contacts met and the participating users. The caller becomes its creator.
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      meetingDTO.CreateMeetingRequest  true  "Meeting"
// @Success      200   {object}  common.CreatedResponse
// @Failure      400   {object}  common.ErrorResponse
// @Router       /api/meetings [post]
func (h *Meeting) Create(c echo.Context) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	var req meetingDTO.CreateMeetingRequest
	if err := bindAndValidate(c, &req, "Company and date required"); err != nil {
		return err
	}

	created, err := h.meetingService.Create(c.Request().Context(), caller.ID, meeting.CreateInput{
		CompanyID:        req.CompanyID,
		MeetingWith:      req.MeetingWith,
		Participants:     req.Participants,
		Medium:           req.Medium,
		MeetingDate:      req.MeetingDate,
		DiscussedMatter:  req.DiscussedMatter,
		Outcome:          req.Outcome,
		NextMeetingDate:  req.NextMeetingDate,
		NextMeetingTopic: req.NextMeetingTopic,
	})
	if err != nil {
		return toAppError(err, "Failed to add meeting")
	}

	return c.JSON(http.StatusOK, common.CreatedResponse{Message: "Meeting added successfully", ID: created.ID})
}

// List godoc
// @Summary      List meetings
// @Description  Every meeting with company, contact and participant names, newest first
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entities.MeetingSummary
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/meetings [get]
func (h *Meeting) List(c echo.Context) error {
	meetings, err := h.meetingService.List(c.Request().Context())
	if err != nil {
		return toAppError(err, "Failed to fetch meetings")
	}
	return c.JSON(http.StatusOK, meetings)
}

// Grouped godoc
// @Summary      Upcoming meetings by day
// @Description  Buckets meetings and planned follow-ups into today, tomorrow and the seven days after
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meeting.GroupedMeetings
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/meetings/grouped [get]
func (h *Meeting) Grouped(c echo.Context) error {
	grouped, err := h.meetingService.Grouped(c.Request().Context())
	if err != nil {
		return toAppError(err, "Failed to fetch grouped meetings")
	}
	return c.JSON(http.StatusOK, grouped)
}
