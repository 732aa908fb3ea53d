package videomeeting

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/external/zoom"
	usecaseErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/meeting"
)

const defaultDuration = 60

// Service defines the interface for Zoom backed video meetings
type Service interface {
	// Create makes the meeting on Zoom, then keeps a local copy
	Create(ctx context.Context, callerID uint, input CreateInput) (*CreateOutput, error)

	// List returns the caller's meetings, latest start first
	List(ctx context.Context, callerID uint) ([]*entities.VideoMeeting, error)
}

// CreateInput represents a create request. Nil Duration and Type take
// the defaults of 60 minutes and a scheduled meeting.
type CreateInput struct {
	Topic     string
	StartTime string
	Duration  *int
	Type      *int
}

// CreateOutput carries the stored row and Zoom's response as received
type CreateOutput struct {
	Meeting *entities.VideoMeeting
	Remote  json.RawMessage
}

// VideoMeetingService creates meetings on Zoom and mirrors them locally
type VideoMeetingService struct {
	client zoom.Client
	repo   repositories.VideoMeetingRepository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

var _ Service = (*VideoMeetingService)(nil)

// NewVideoMeetingService creates the service. client may be nil when Zoom
// is not configured; Create then fails and List keeps working.
func NewVideoMeetingService(client zoom.Client, repo repositories.VideoMeetingRepository, loc *time.Location, logger *zap.Logger) *VideoMeetingService {
	if loc == nil {
		loc = time.Local
	}
	return &VideoMeetingService{
		client: client,
		repo:   repo,
		loc:    loc,
		now:    time.Now,
		logger: logger,
	}
}

func (in CreateInput) normalize() (entities.VideoMeetingType, int, error) {
	meetingType := entities.VideoMeetingScheduled
	if in.Type != nil {
		meetingType = entities.VideoMeetingType(*in.Type)
	}
	if !meetingType.IsValid() {
		return 0, 0, usecaseErrors.ErrInvalidMeetingType
	}

	duration := defaultDuration
	if in.Duration != nil {
		duration = *in.Duration
	}
	if duration <= 0 {
		return 0, 0, usecaseErrors.ErrInvalidDuration
	}

	if strings.TrimSpace(in.Topic) == "" {
		return 0, 0, usecaseErrors.ErrTopicRequired
	}
	if meetingType == entities.VideoMeetingScheduled && strings.TrimSpace(in.StartTime) == "" {
		return 0, 0, usecaseErrors.ErrStartTimeRequired
	}
	return meetingType, duration, nil
}

func (s *VideoMeetingService) Create(ctx context.Context, callerID uint, input CreateInput) (*CreateOutput, error) {
	meetingType, duration, err := input.normalize()
	if err != nil {
		return nil, err
	}
	if s.client == nil {
		return nil, usecaseErrors.ErrZoomNotConfigured
	}

	req := &zoom.CreateMeetingRequest{
		Topic:    input.Topic,
		Type:     int(meetingType),
		Duration: duration,
	}

	var requestedStart time.Time
	if meetingType == entities.VideoMeetingScheduled {
		requestedStart, err = meeting.ParseDateTime(input.StartTime, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidMeetingDate, err)
		}
		req.StartTime = requestedStart.UTC().Format(time.RFC3339)
	}

	remote, err := s.client.CreateMeeting(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrZoomRequestFailed, err)
	}

	local := &entities.VideoMeeting{
		Topic:         input.Topic,
		StartTime:     s.startTime(remote, requestedStart),
		Duration:      duration,
		Type:          meetingType,
		ZoomMeetingID: strconv.FormatInt(remote.ID, 10),
		JoinURL:       remote.JoinURL,
		CreatedBy:     callerID,
	}

	if err := s.repo.Create(ctx, local); err != nil {
		// the Zoom meeting stays; record enough to find it
		s.logger.Error("zoom meeting created but not saved",
			zap.String("zoom_meeting_id", local.ZoomMeetingID),
			zap.String("join_url", local.JoinURL),
			zap.Uint("created_by", callerID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrVideoMeetingSave, err)
	}

	s.logger.Info("zoom meeting created",
		zap.Uint("id", local.ID),
		zap.String("zoom_meeting_id", local.ZoomMeetingID),
	)

	return &CreateOutput{Meeting: local, Remote: remote.Raw}, nil
}

// startTime prefers Zoom's answer, then the requested time, then now
func (s *VideoMeetingService) startTime(remote *zoom.Meeting, requested time.Time) time.Time {
	if remote.StartTime != "" {
		if t, err := time.Parse(time.RFC3339, remote.StartTime); err == nil {
			return t
		}
	}
	if !requested.IsZero() {
		return requested
	}
	return s.now()
}

func (s *VideoMeetingService) List(ctx context.Context, callerID uint) ([]*entities.VideoMeeting, error) {
	meetings, err := s.repo.ListByCreator(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list video meetings: %w", err)
	}
	if meetings == nil {
		meetings = []*entities.VideoMeeting{}
	}
	return meetings, nil
}
