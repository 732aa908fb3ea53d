package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-scheduler/errors"
	zoomDTO "github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/zoom"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/http/middleware"
	ucErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/videomeeting"
)

// Zoom handles video meeting requests
type Zoom struct {
	videoMeetingService videomeeting.Service
}

// NewZoom creates a new zoom handler
func NewZoom(videoMeetingService videomeeting.Service) *Zoom {
	return &Zoom{videoMeetingService: videoMeetingService}
}

// CreateMeeting godoc
// @Summary      Create a Zoom meeting
// @Description  Creates the meeting on Zoom, then keeps a local copy. Type defaults to 2 (scheduled), duration to 60 minutes.
// @Tags         zoom
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      zoomDTO.CreateMeetingRequest  true  "Meeting"
// @Success      200   {object}  zoomDTO.CreateMeetingResponse
// @Failure      400   {object}  common.ErrorResponse
// @Failure      500   {object}  common.ErrorResponse
// @Router       /api/zoom/meeting [post]
func (h *Zoom) CreateMeeting(c echo.Context) error {
	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return errors.ErrUnauthenticated()
	}

	var req zoomDTO.CreateMeetingRequest
	if err := bindAndValidate(c, &req, "Topic and start_time required for scheduled meeting"); err != nil {
		return err
	}

	out, err := h.videoMeetingService.Create(c.Request().Context(), callerID, videomeeting.CreateInput{
		Topic:     req.Topic,
		StartTime: req.StartTime,
		Duration:  req.Duration,
		Type:      req.Type,
	})
	if err != nil {
		if stdErrors.Is(err, ucErrors.ErrInvalidMeetingDate) {
			return errors.ErrInvalidArgument("Invalid start_time")
		}
		return toAppError(err, "Failed to create Zoom meeting")
	}

	return c.JSON(http.StatusOK, zoomDTO.CreateMeetingResponse{Message: "Meeting created", Meeting: out.Remote})
}

// ListMeetings godoc
// @Summary      My Zoom meetings
// @Description  Meetings the caller created, latest start first
// @Tags         zoom
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entities.VideoMeeting
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/zoom/meetings [get]
func (h *Zoom) ListMeetings(c echo.Context) error {
	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return errors.ErrUnauthenticated()
	}

	meetings, err := h.videoMeetingService.List(c.Request().Context(), callerID)
	if err != nil {
		return toAppError(err, "Failed to fetch Zoom meetings")
	}
	return c.JSON(http.StatusOK, meetings)
}
